package assembler

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/n-ulricksen/sixtwo/internal/cpu"
)

// commentRe strips a ';'-led comment running to end of line.
var commentRe = regexp.MustCompile(`;.*$`)

// operandRe recognizes every 6502 operand shape in one pass. Named groups
// let Lex pick the addressing mode straight off which group matched,
// rather than trying each shape in sequence.
var operandRe = regexp.MustCompile(
	`(?i)^(?:` +
		`(?P<acc>A)|` +
		`#\$(?P<immhex>[0-9A-F]{1,2})|` +
		`#(?P<immdec>[0-9]{1,3})|` +
		`\((?P<indx>\$[0-9A-F]{1,2}),X\)|` +
		`\((?P<indy>\$[0-9A-F]{1,2})\),\s*Y|` + // (zp),Y, tolerant of a space after comma
		`\((?P<ind>\$[0-9A-F]{4})\)|` +
		`(?P<zpx>\$[0-9A-F]{1,2}),X|` +
		`(?P<zpy>\$[0-9A-F]{1,2}),Y|` +
		`(?P<absx>\$[0-9A-F]{3,4}),X|` +
		`(?P<absy>\$[0-9A-F]{3,4}),Y|` +
		`(?P<zp>\$[0-9A-F]{1,2})|` +
		`(?P<abs>\$[0-9A-F]{3,4})|` +
		`(?P<label>[A-Za-z_][A-Za-z0-9_]*)` +
		`)$`,
)

// Lex splits source into lines, strips comments and whitespace, and
// tokenizes each non-blank line into a label token (if any) followed by an
// opcode token and at most one operand token. It does not check that the
// opcode/mode combination is legal or that operand counts make sense —
// that is Validate's job.
func Lex(lines []string) ([][]Token, error) {
	out := make([][]Token, 0, len(lines))

	for i, raw := range lines {
		lineNo := i + 1

		line := commentRe.ReplaceAllString(raw, "")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var tokens []Token

		if idx := strings.Index(line, ":"); idx >= 0 {
			label := strings.TrimSpace(line[:idx])
			if label == "" {
				return nil, &LexError{Line: lineNo, Text: raw, Msg: "empty label"}
			}
			tokens = append(tokens, Token{Kind: TokenLabel, Label: label})
			line = strings.TrimSpace(line[idx+1:])
			if line == "" {
				out = append(out, tokens)
				continue
			}
		}

		fields := strings.Fields(line)
		mnemonic, ok := cpu.MnemonicByName(strings.ToUpper(fields[0]))
		if !ok {
			return nil, &LexError{Line: lineNo, Text: raw, Msg: "unknown mnemonic " + fields[0]}
		}
		tokens = append(tokens, Token{Kind: TokenOpCode, Op: mnemonic})

		rest := strings.TrimSpace(strings.TrimPrefix(line, fields[0]))
		if rest == "" {
			out = append(out, tokens)
			continue
		}

		operand, err := lexOperand(rest, lineNo, raw)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, operand)

		out = append(out, tokens)
	}

	return out, nil
}

func lexOperand(s string, lineNo int, raw string) (Token, error) {
	m := operandRe.FindStringSubmatch(s)
	if m == nil {
		return Token{}, &LexError{Line: lineNo, Text: raw, Msg: "unrecognized operand " + s}
	}
	names := operandRe.SubexpNames()

	get := func(name string) string {
		for i, n := range names {
			if n == name && m[i] != "" {
				return m[i]
			}
		}
		return ""
	}

	switch {
	case get("acc") != "":
		return Token{Kind: TokenAccumulator}, nil
	case get("immhex") != "":
		v, _ := strconv.ParseUint(get("immhex"), 16, 8)
		return Token{Kind: TokenImmediate, Value: uint16(v), Base: Base16}, nil
	case get("immdec") != "":
		v, err := strconv.ParseUint(get("immdec"), 10, 8)
		if err != nil {
			return Token{}, &LexError{Line: lineNo, Text: raw, Msg: "immediate out of range " + s}
		}
		return Token{Kind: TokenImmediate, Value: uint16(v), Base: Base10}, nil
	case get("indx") != "":
		v, _ := strconv.ParseUint(strings.TrimPrefix(get("indx"), "$"), 16, 8)
		return Token{Kind: TokenIndirectX, Value: uint16(v)}, nil
	case get("indy") != "":
		v, _ := strconv.ParseUint(strings.TrimPrefix(get("indy"), "$"), 16, 8)
		return Token{Kind: TokenIndirectY, Value: uint16(v)}, nil
	case get("ind") != "":
		v, _ := strconv.ParseUint(strings.TrimPrefix(get("ind"), "$"), 16, 16)
		return Token{Kind: TokenIndirect, Value: uint16(v)}, nil
	case get("zpx") != "":
		v, _ := strconv.ParseUint(strings.TrimPrefix(get("zpx"), "$"), 16, 8)
		return Token{Kind: TokenZeroPageX, Value: uint16(v)}, nil
	case get("zpy") != "":
		v, _ := strconv.ParseUint(strings.TrimPrefix(get("zpy"), "$"), 16, 8)
		return Token{Kind: TokenZeroPageY, Value: uint16(v)}, nil
	case get("absx") != "":
		v, _ := strconv.ParseUint(strings.TrimPrefix(get("absx"), "$"), 16, 16)
		return Token{Kind: TokenAbsoluteX, Value: uint16(v)}, nil
	case get("absy") != "":
		v, _ := strconv.ParseUint(strings.TrimPrefix(get("absy"), "$"), 16, 16)
		return Token{Kind: TokenAbsoluteY, Value: uint16(v)}, nil
	case get("zp") != "":
		v, _ := strconv.ParseUint(strings.TrimPrefix(get("zp"), "$"), 16, 8)
		return Token{Kind: TokenZeroPage, Value: uint16(v)}, nil
	case get("abs") != "":
		v, _ := strconv.ParseUint(strings.TrimPrefix(get("abs"), "$"), 16, 16)
		return Token{Kind: TokenAbsolute, Value: uint16(v)}, nil
	case get("label") != "":
		// A bare identifier operand is a branch target: the only
		// mnemonics that take one are the eight relative branches.
		return Token{Kind: TokenRelative, Label: get("label")}, nil
	}

	return Token{}, &LexError{Line: lineNo, Text: raw, Msg: "unrecognized operand " + s}
}
