package lexer

// Cursor walks forward over a rune buffer. It never moves backwards, once a
// rune is consumed it cannot be read again through the same cursor.
type Cursor struct {
	source  []rune
	start   int
	current int
}

// NewCursor creates a cursor positioned at the first rune of source
func NewCursor(source []rune) *Cursor {
	return &Cursor{source: source}
}

// Peek returns the rune at the current position, but does not consume it
func (cursor *Cursor) Peek() (rune, bool) {
	if cursor.Done() {
		return 0, false
	}
	return cursor.source[cursor.current], true
}

// Advance consumes and returns the rune at the current position
func (cursor *Cursor) Advance() (rune, bool) {
	if cursor.Done() {
		return 0, false
	}
	r := cursor.source[cursor.current]
	cursor.current++
	return r, true
}

// AdvanceWhile consumes the longest run of runes satisfying pred and returns
// how many were consumed
func (cursor *Cursor) AdvanceWhile(pred func(rune) bool) int {
	count := 0
	for r, ok := cursor.Peek(); ok && pred(r); r, ok = cursor.Peek() {
		cursor.current++
		count++
	}
	return count
}

// Mark resets the token start to the current position
func (cursor *Cursor) Mark() {
	cursor.start = cursor.current
}

// Measure returns the number of runes consumed since the last Mark
func (cursor *Cursor) Measure() int {
	return cursor.current - cursor.start
}

// Lexeme returns the text consumed since the last Mark
func (cursor *Cursor) Lexeme() string {
	return string(cursor.source[cursor.start:cursor.current])
}

// Done returns true once every rune has been consumed
func (cursor *Cursor) Done() bool {
	return cursor.current >= len(cursor.source)
}
