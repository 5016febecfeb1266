package wordview

import (
	"slices"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sirupsen/logrus"
)

// View splits calldata into an optional Signature and an ordered page of
// Words, and edits them in place.
//
// Every method is total. Indices past the end clamp to the last word, and
// negative indices clamp to 0. Pop and RemoveAt may drain the page; reads on
// an empty page behave as if it held one zero word, and the next indexed
// write puts that zero word back before applying itself.
type View struct {
	sig  *Signature
	page []*Word
	log  logrus.FieldLogger
}

// NewView parses call into a View. With WithSignature the first 4 bytes
// become the Signature and the rest is split into words; otherwise the whole
// buffer is split. An empty body yields a single zero word.
func NewView(call *Calldata, opts ...ViewOption) *View {
	config := defaultViewConfig()
	for _, opt := range opts {
		opt(config)
	}

	var data []byte
	if call != nil {
		data = call.data
	}

	v := &View{log: config.logger}

	if config.withSignature {
		selLen := min(SelectorSize, len(data))
		v.sig = NewSignature(data[:selLen])
		if selLen < SelectorSize {
			v.log.WithField("len", selLen).Debug("calldata shorter than a selector, using zero selector")
		}
		data = data[selLen:]
	}

	chunks := ChunkAll(data)
	v.page = make([]*Word, 0, max(len(chunks), 1))
	for _, chunk := range chunks {
		v.page = append(v.page, WordFromHash(chunk))
	}
	if len(v.page) == 0 {
		v.page = append(v.page, ZeroWord())
	}

	return v
}

// HasSignature reports whether the View carries a selector.
func (v *View) HasSignature() bool {
	return v.sig != nil
}

// Signature returns a copy of the selector, or nil when there is none.
func (v *View) Signature() *Signature {
	if v.sig == nil {
		return nil
	}
	sig := *v.sig
	return &sig
}

// SignatureHex returns the selector as hex, or "" when there is none.
func (v *View) SignatureHex() string {
	if v.sig == nil {
		return ""
	}
	return v.sig.Hex()
}

// WordCount returns the number of words in the page. It reports 0 once the
// page has been drained by Pop or RemoveAt.
func (v *View) WordCount() int {
	return len(v.page)
}

// Word returns the hex of the word at the clamped index.
func (v *View) Word(index int) string {
	page := v.readPage()
	return page[v.clamp(index, len(page))].Hex()
}

// At returns a copy of the word at the clamped index.
func (v *View) At(index int) *Word {
	page := v.readPage()
	return page[v.clamp(index, len(page))].Clone()
}

// WordsRange returns the hex of the words in [min(start, end), min(end, count)).
// Ranges that are inverted or run past the end narrow to what exists.
func (v *View) WordsRange(start, end int) []string {
	words := v.window(start, end)
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Hex()
	}
	return out
}

// Words returns copies of the words in the same range as WordsRange.
func (v *View) Words(start, end int) []*Word {
	words := v.window(start, end)
	out := make([]*Word, len(words))
	for i, w := range words {
		out[i] = w.Clone()
	}
	return out
}

// Page returns the hex of every word, in order.
func (v *View) Page() []string {
	return v.WordsRange(0, len(v.readPage()))
}

// DataHex returns the page without the selector: the lone word's hex when
// the page holds one word, otherwise every word's hex concatenated.
func (v *View) DataHex() string {
	page := v.readPage()
	if len(page) == 1 {
		return page[0].Hex()
	}

	var sb strings.Builder
	sb.Grow(len(page) * WordSize * 2)
	for _, w := range page {
		sb.WriteString(w.Hex())
	}
	return sb.String()
}

// FullHex returns selector and data as hex without prefix.
func (v *View) FullHex() string {
	return v.SignatureHex() + v.DataHex()
}

// FullHex0x returns selector and data as 0x-prefixed hex.
func (v *View) FullHex0x() string {
	return "0x" + v.FullHex()
}

// String returns FullHex0x.
func (v *View) String() string {
	return v.FullHex0x()
}

// Calldata serializes the View back into a payload. Words are written in
// their stored shape, so the result always matches FullHex.
func (v *View) Calldata() *Calldata {
	page := v.readPage()
	out := make([]byte, 0, SelectorSize+len(page)*WordSize)
	if v.sig != nil {
		out = append(out, v.sig.data[:]...)
	}
	for _, w := range page {
		out = append(out, w.Bytes()...)
	}
	return &Calldata{data: out}
}

// ReplaceSignature overwrites the selector, adding one if absent.
// Fewer than 4 bytes give 00000000; extra bytes are ignored.
func (v *View) ReplaceSignature(b []byte) {
	if len(b) < SelectorSize {
		v.log.WithField("len", len(b)).Debug("selector shorter than 4 bytes, using zero selector")
	}
	v.sig = NewSignature(b)
}

// ReplaceSignatureHex is ReplaceSignature with a hex source.
func (v *View) ReplaceSignatureHex(s string) {
	v.ReplaceSignature(FromHex(s))
}

// Replace overwrites the word at the clamped index with up to 32 bytes of b.
func (v *View) Replace(index int, b []byte) {
	v.page[v.writeIndex(index)] = NewWord(b)
}

// ReplaceHex is Replace with a hex source.
func (v *View) ReplaceHex(index int, s string) {
	v.Replace(index, FromHex(s))
}

// Clear overwrites the word at the clamped index with 32 zero bytes.
func (v *View) Clear(index int) {
	v.page[v.writeIndex(index)] = ZeroWord()
}

// Append adds a word built from up to 32 bytes of b to the end of the page.
// Short input keeps its length until padded.
func (v *View) Append(b []byte) {
	v.page = append(v.page, NewWord(b))
}

// AppendHex is Append with a hex source.
func (v *View) AppendHex(s string) {
	v.Append(FromHex(s))
}

// AppendWord adds a copy of w to the end of the page. A nil w appends a zero
// word.
func (v *View) AppendWord(w *Word) {
	if w == nil {
		v.AppendEmpty()
		return
	}
	v.page = append(v.page, w.Clone())
}

// AppendEmpty adds a zero word to the end of the page.
func (v *View) AppendEmpty() {
	v.page = append(v.page, ZeroWord())
}

// Pop removes and returns the last word. On an empty page it removes nothing
// and returns a zero word.
func (v *View) Pop() *Word {
	if len(v.page) == 0 {
		v.log.Debug("pop on empty page, returning zero word")
		return ZeroWord()
	}
	last := v.page[len(v.page)-1]
	v.page[len(v.page)-1] = nil
	v.page = v.page[:len(v.page)-1]
	return last
}

// RemoveAt removes and returns the word at the clamped index. On an empty
// page it removes nothing and returns a zero word.
func (v *View) RemoveAt(index int) *Word {
	if len(v.page) == 0 {
		v.log.WithField("index", index).Debug("remove on empty page, returning zero word")
		return ZeroWord()
	}
	i := v.clamp(index, len(v.page))
	removed := v.page[i]
	v.page = slices.Delete(v.page, i, i+1)
	return removed
}

// ReplaceWith copies the word at the clamped source index over the clamped
// target index, then removes the word at the source index. The page shrinks
// by one; when both indices clamp to the same word it is simply removed.
func (v *View) ReplaceWith(target, source int) {
	t := v.writeIndex(target)
	s := v.clamp(source, len(v.page))
	v.page[t] = v.page[s].Clone()
	v.page = slices.Delete(v.page, s, s+1)
}

// LeftPad replaces the word at the clamped index with its bytes left padded
// to 32.
func (v *View) LeftPad(index int) {
	i := v.writeIndex(index)
	v.page[i] = WordFromHash(PadLeft(v.page[i].Bytes()))
}

// RightPad replaces the word at the clamped index with its bytes right padded
// to 32.
func (v *View) RightPad(index int) {
	i := v.writeIndex(index)
	v.page[i] = WordFromHash(PadRight(v.page[i].Bytes()))
}

// RotateRight rotates the word at the clamped index right by n bytes.
func (v *View) RotateRight(index int, n uint) {
	v.apply(index, func(w common.Hash) common.Hash { return RotateRight(w, n) })
}

// RotateLeft rotates the word at the clamped index left by n bytes.
func (v *View) RotateLeft(index int, n uint) {
	v.apply(index, func(w common.Hash) common.Hash { return RotateLeft(w, n) })
}

// XorInto xors b, as a word, into the word at the clamped index.
func (v *View) XorInto(index int, b []byte) {
	src := NewWord(b).Hash()
	v.apply(index, func(w common.Hash) common.Hash { return Xor(w, src) })
}

// XorIntoHex is XorInto with a hex source.
func (v *View) XorIntoHex(index int, s string) {
	v.XorInto(index, FromHex(s))
}

// AndInto ands b, as a word, into the word at the clamped index.
func (v *View) AndInto(index int, b []byte) {
	src := NewWord(b).Hash()
	v.apply(index, func(w common.Hash) common.Hash { return And(w, src) })
}

// AndIntoHex is AndInto with a hex source.
func (v *View) AndIntoHex(index int, s string) {
	v.AndInto(index, FromHex(s))
}

// OrInto ors b, as a word, into the word at the clamped index.
func (v *View) OrInto(index int, b []byte) {
	src := NewWord(b).Hash()
	v.apply(index, func(w common.Hash) common.Hash { return Or(w, src) })
}

// OrIntoHex is OrInto with a hex source.
func (v *View) OrIntoHex(index int, s string) {
	v.OrInto(index, FromHex(s))
}

// Not flips every bit of the word at the clamped index.
func (v *View) Not(index int) {
	v.apply(index, Not)
}

// XorFold pops the last word and xors it into the new last word. Pages with
// fewer than two words are left alone.
func (v *View) XorFold() {
	if len(v.page) < 2 {
		return
	}
	v.foldStep()
}

// XorFoldAll folds the page down to one word, the xor of every word, by
// applying the XorFold step count-1 times.
func (v *View) XorFoldAll() {
	for n := len(v.page) - 1; n > 0; n-- {
		v.foldStep()
	}
}

func (v *View) foldStep() {
	last := v.Pop()
	i := len(v.page) - 1
	v.page[i] = WordFromHash(Xor(v.page[i].Hash(), last.Hash()))
}

// apply replaces the word at the clamped index with f of its 32-byte form.
func (v *View) apply(index int, f func(common.Hash) common.Hash) {
	i := v.writeIndex(index)
	v.page[i] = WordFromHash(f(v.page[i].Hash()))
}

// readPage returns the page, or a single zero word standing in for a drained
// page.
func (v *View) readPage() []*Word {
	if len(v.page) == 0 {
		v.log.Debug("read on empty page, using zero word")
		return []*Word{ZeroWord()}
	}
	return v.page
}

// writeIndex restores a drained page and clamps index for a write.
func (v *View) writeIndex(index int) int {
	if len(v.page) == 0 {
		v.log.Debug("write on empty page, restoring zero word")
		v.page = append(v.page, ZeroWord())
	}
	return v.clamp(index, len(v.page))
}

// clamp maps index into [0, count-1]. count must be positive.
func (v *View) clamp(index, count int) int {
	switch {
	case index < 0:
		v.log.WithFields(logrus.Fields{"index": index, "clamped": 0}).Debug("negative index, clamped to first word")
		return 0
	case index >= count:
		v.log.WithFields(logrus.Fields{"index": index, "clamped": count - 1, "len": count}).
			Debug("index out of range, clamped to last word")
		return count - 1
	default:
		return index
	}
}

// window returns the page slice [min(start, end), min(end, count)), narrowed
// so it never inverts or leaves the page.
func (v *View) window(start, end int) []*Word {
	page := v.readPage()
	lo := max(min(start, end), 0)
	hi := max(min(end, len(page)), 0)
	if lo > hi {
		lo = hi
	}
	return page[lo:hi]
}
