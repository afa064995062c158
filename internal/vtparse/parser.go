package vtparse

// Parser turns a fed rune stream into a StreamStore of classified
// elements, notifying observers as each one completes.
//
// Grounded on the teacher's internal/redact/stream.go Stream: a type
// that owns a tokenizer, a detector, and a sink, and is the thing Write
// is called on. Here the tokenizer is splitter, the detector is
// classify (called from inside splitter.emit), and the sink is
// StreamStore plus the registered callbacks.
type Parser struct {
	splitter *splitter
	store    *StreamStore

	onElementAdded func(StreamElement)
	onTransient    func(string)
}

// New returns a Parser ready to Feed.
func New() *Parser {
	p := &Parser{store: newStreamStore()}
	p.splitter = newSplitter(p.handleElement, p.handleTransient)
	return p
}

func (p *Parser) handleElement(el StreamElement) {
	p.store.append(el)
	if p.onElementAdded != nil {
		p.onElementAdded(el)
	}
}

func (p *Parser) handleTransient(text string) {
	if p.onTransient != nil {
		p.onTransient(text)
	}
}

// Feed advances the parser by one code point. It may synchronously
// invoke the registered OnElementAdded and/or OnTransientText callbacks,
// in the ordering spec.md §5 requires.
func (p *Parser) Feed(c rune) {
	p.splitter.feed(c)
}

// FeedString feeds each rune of s in order.
func (p *Parser) FeedString(s string) {
	for _, c := range s {
		p.Feed(c)
	}
}

// Reset recovers a parser stuck mid-sequence because its terminator
// never arrived, returning its splitter to the TEXT state. It does not
// touch the elements already recorded in the store — those stay
// append-only per spec.md §3.
func (p *Parser) Reset() {
	p.splitter.reset()
}

// Elements returns every StreamElement appended so far, in order.
func (p *Parser) Elements() []StreamElement {
	return p.store.Elements()
}

// OnElementAdded registers fn to be called synchronously whenever a new
// StreamElement is appended to the store. Registering a new callback
// replaces any previously registered one.
func (p *Parser) OnElementAdded(fn func(StreamElement)) {
	p.onElementAdded = fn
}

// OnTransientText registers fn to be called synchronously with the
// in-progress text run each time an additional character extends it.
// Registering a new callback replaces any previously registered one.
func (p *Parser) OnTransientText(fn func(string)) {
	p.onTransient = fn
}
