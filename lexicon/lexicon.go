// Package lexicon builds and exposes the word list used twice over (spec
// §3): once to build the GADDAG (gaddag.Builder), once as a direct
// exact-membership oracle for cross-word checks at commit time.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/avast/retry-go"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/wordforge/lexigrid/alphabet"
	"github.com/wordforge/lexigrid/gaddag"
)

// Lexicon is an exact set of accepted words (length 2..15, alphabetic),
// plus the GADDAG built over the same word list.
type Lexicon struct {
	name   string
	alph   *alphabet.Alphabet
	words  map[string]struct{}
	gaddag *gaddag.Gaddag
}

func (l *Lexicon) Name() string { return l.name }

func (l *Lexicon) Alphabet() *alphabet.Alphabet { return l.alph }

func (l *Lexicon) Gaddag() *gaddag.Gaddag { return l.gaddag }

// HasWord is the exact-membership oracle used by the commit pipeline (spec
// §4.6 step 7) to validate every formed word, main and cross.
func (l *Lexicon) HasWord(word string) bool {
	_, ok := l.words[strings.ToUpper(word)]
	return ok
}

// NumWords returns the size of the loaded word list.
func (l *Lexicon) NumWords() int {
	return len(l.words)
}

// FromWords builds a Lexicon (membership set and GADDAG) from an in-memory
// word list. Load uses it after reading a file, and tests use it directly
// for a tiny word list (spec §8 scenario lexicon L).
func FromWords(name string, alph *alphabet.Alphabet, words []string) (*Lexicon, error) {
	l := &Lexicon{name: name, alph: alph, words: make(map[string]struct{}, len(words))}
	b := gaddag.NewBuilder(alph, name)
	for _, w := range words {
		w = strings.ToUpper(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if len(w) < 2 || len(w) > 15 {
			return nil, fmt.Errorf("lexicon: word %q has invalid length", w)
		}
		mw, err := alphabet.ToMachineWord(w, alph)
		if err != nil {
			return nil, fmt.Errorf("lexicon: word %q: %w", w, err)
		}
		if err := b.AddWord(mw); err != nil {
			return nil, fmt.Errorf("lexicon: word %q: %w", w, err)
		}
		l.words[w] = struct{}{}
	}
	l.gaddag = b.Build()
	return l, nil
}

// Load reads a newline-delimited word list from r (one word per line,
// extra whitespace-separated fields ignored, same convention as the
// teacher's gaddagmaker.getWords) and builds both the membership set and
// the GADDAG. The read is retried per avast/retry-go, matching the
// teacher's general "retry fallible I/O at startup" idiom, since lexicon
// files are frequently fetched from a remote/mounted volume that can flake
// briefly during container startup.
func Load(name string, alph *alphabet.Alphabet, open func() (io.ReadCloser, error)) (*Lexicon, error) {
	var words []string
	err := retry.Do(func() error {
		rc, err := open()
		if err != nil {
			return err
		}
		defer rc.Close()
		words, err = readWords(rc)
		return err
	}, retry.Attempts(3))
	if err != nil {
		return nil, fmt.Errorf("lexicon: failed to load %q: %w", name, err)
	}
	log.Info().Str("lexicon", name).Int("words", len(words)).Msg("loaded lexicon word list")
	return FromWords(name, alph, words)
}

func readWords(r io.Reader) ([]string, error) {
	// Some legacy word lists ship in Windows-1252; tolerate that the way
	// gcgio.go does for GCG files, via golang.org/x/text/encoding/charmap.
	decoded := transform.NewReader(r, charmap.Windows1252.NewDecoder())
	scanner := bufio.NewScanner(decoded)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var words []string
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		words = append(words, strings.ToUpper(fields[0]))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// AcceptAll is a Lexicon stand-in that accepts every word — used only for
// local testing/sandboxing with no real dictionary loaded, matching the
// teacher's lexicon.AcceptAll escape hatch in game/rules.go.
type AcceptAll struct {
	Alph *alphabet.Alphabet
}

// HasWord reports true for every word.
func (a AcceptAll) HasWord(word string) bool {
	return true
}
