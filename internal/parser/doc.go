/*
Package parser builds expression trees from a token stream.

Grammar

	file           --> ( expr ";"? )* EOF ;
	expr           --> assignment ;
	assignment     --> equality ( ( "=" | "+=" | "-=" | "*=" | "/=" ) assignment )? ;
	equality       --> comparison ( ( "==" | "!=" ) equality )? ;
	comparison     --> additive ( ( "<" | "<=" | ">" | ">=" ) comparison )? ;
	additive       --> multiplicative ( ( "+" | "-" ) additive )? ;
	multiplicative --> call ( ( "*" | "/" ) multiplicative )? ;
	call           --> unary ( "(" args? ")" )* ;
	args           --> expr ( "," expr )* ;
	unary          --> ( "-" | "!" ) primary
	                 | primary ;
	primary        --> IDENT | NUMBER | STRING
	                 | "(" expr ")"
	                 | "{" body "}"
	                 | "let" IDENT "=" expr
	                 | "fn" IDENT "(" params? ")" "{" body "}"
	                 | "extern" "fn" IDENT "(" params? ")"
	                 | "return" ;
	params         --> IDENT ( "," IDENT )* ;
	body           --> ( expr ( ";" expr )* ";"? )? ;

Every binary layer parses its right operand at the same layer, so chains of
operators with equal precedence group to the right: "a - b - c" is
"a - (b - c)". The operand of a unary operator is a primary expression, and a
call applies to whatever the unary layer returned, so "-f(x)" calls "-f".

The parser stops at the first error. Lexical errors read from the token
source are returned unchanged.
*/
package parser
