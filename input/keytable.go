package input

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
)

var (
	ErrUnknownKey    = errors.New("unknown key")
	ErrUnknownIntent = errors.New("unknown intent")
)

// keyCode identifies a tcell key; rune is only set for tcell.KeyRune
type keyCode struct {
	key tcell.Key
	r   rune
}

// namedKeys are the non-printable key names accepted in [keys]
var namedKeys = map[string]tcell.Key{
	"up":        tcell.KeyUp,
	"down":      tcell.KeyDown,
	"left":      tcell.KeyLeft,
	"right":     tcell.KeyRight,
	"esc":       tcell.KeyEscape,
	"enter":     tcell.KeyEnter,
	"tab":       tcell.KeyTab,
	"backspace": tcell.KeyBackspace2,
}

// KeyTable maps terminal keys to intents
type KeyTable struct {
	keys map[keyCode]Intent
}

// NewKeyTable builds a table from intent name to key name bindings
// Ctrl+C always quits so a bad config cannot trap the terminal
func NewKeyTable(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{keys: map[keyCode]Intent{
		{key: tcell.KeyCtrlC}: IntentQuit,
	}}

	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		intent, ok := ParseIntent(name)
		if !ok {
			errs = append(errs, fmt.Errorf("keys.%s: %w", name, ErrUnknownIntent))
			continue
		}
		code, err := parseKey(bindings[name])
		if err != nil {
			errs = append(errs, fmt.Errorf("keys.%s: %w", name, err))
			continue
		}
		if prev, dup := kt.keys[code]; dup && prev != intent {
			errs = append(errs, fmt.Errorf("keys.%s: %q already bound to %s", name, bindings[name], prev))
			continue
		}
		kt.keys[code] = intent
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return kt, nil
}

// Lookup returns the intent bound to ev, IntentNone if unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	code := keyCode{key: ev.Key()}
	if code.key == tcell.KeyRune {
		r := ev.Rune()
		// Some terminals deliver Ctrl+letter as a rune with the Ctrl modifier
		if ev.Modifiers()&tcell.ModCtrl != 0 && r >= 'a' && r <= 'z' {
			return kt.keys[keyCode{key: tcell.KeyCtrlA + tcell.Key(r-'a')}]
		}
		code.r = r
	}
	return kt.keys[code]
}

// Len returns the number of bound keys
func (kt *KeyTable) Len() int { return len(kt.keys) }

// parseKey accepts a single character, "space", "ctrl+<letter>" or a named key
func parseKey(s string) (keyCode, error) {
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		return keyCode{key: tcell.KeyRune, r: r}, nil
	}
	lower := strings.ToLower(s)
	if lower == "space" {
		return keyCode{key: tcell.KeyRune, r: ' '}, nil
	}
	if k, ok := namedKeys[lower]; ok {
		return keyCode{key: k}, nil
	}
	if letter, ok := strings.CutPrefix(lower, "ctrl+"); ok && len(letter) == 1 && letter[0] >= 'a' && letter[0] <= 'z' {
		return keyCode{key: tcell.KeyCtrlA + tcell.Key(letter[0]-'a')}, nil
	}
	return keyCode{}, fmt.Errorf("%w %q", ErrUnknownKey, s)
}
