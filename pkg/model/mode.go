package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMode = errors.New("unknown signature gene mode")

// SignatureMode selects which signature genes must co-occur with a CAZyme.
type SignatureMode int

const (
	ModeAll SignatureMode = iota
	ModeTP
	ModeTF
	ModeSTP
	ModeTPTF
	ModeTPSTP
	ModeTFSTP
)

// AllModes lists every mode in the order the CLI documents them.
var AllModes = [...]SignatureMode{ModeAll, ModeTP, ModeTF, ModeSTP, ModeTPTF, ModeTPSTP, ModeTFSTP}

func (m SignatureMode) String() string {
	switch m {
	case ModeAll:
		return "all"
	case ModeTP:
		return "tp"
	case ModeTF:
		return "tf"
	case ModeSTP:
		return "stp"
	case ModeTPTF:
		return "tp+tf"
	case ModeTPSTP:
		return "tp+stp"
	case ModeTFSTP:
		return "tf+stp"
	default:
		return fmt.Sprintf("SignatureMode(%d)", int(m))
	}
}

func ParseSignatureMode(s string) (SignatureMode, error) {
	for _, m := range AllModes {
		if m.String() == s {
			return m, nil
		}
	}
	return ModeAll, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownMode, s, ModeNames())
}

// ModeNames returns the accepted mode spellings joined for help text.
func ModeNames() string {
	names := make([]string, 0, len(AllModes))
	for _, m := range AllModes {
		names = append(names, m.String())
	}
	return strings.Join(names, ", ")
}
