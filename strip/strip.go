package strip

import (
	stderrors "errors"
	"io"

	"go.uber.org/zap"

	"github.com/wasmkit/wasm-strip/errors"
	"github.com/wasmkit/wasm-strip/wasm"
)

// Strip runs one pass over input, dropping every custom section the policy
// rejects, and returns the re-assembled module. All other sections are
// copied verbatim in their original order. On any structural error no
// output is produced.
func Strip(input []byte, policy *Policy) ([]byte, error) {
	w, err := wasm.NewWalker(input)
	if err != nil {
		return nil, wrapParseError(err)
	}

	out := wasm.NewBuilder()
	log := Logger()

	var kept, dropped int
	for w.Next() {
		sec := w.Section()
		if sec.IsCustom() && policy.Strip(sec.Name) {
			dropped++
			log.Debug("dropping custom section",
				zap.String("name", sec.Name),
				zap.Int("size", sec.Size()))
			continue
		}
		kept++
		out.Section(sec.ID, sec.Contents)
	}
	if err := w.Err(); err != nil {
		return nil, wrapParseError(err)
	}

	log.Debug("strip pass complete",
		zap.Int("sections_kept", kept),
		zap.Int("sections_dropped", dropped),
		zap.Int("bytes_in", len(input)),
		zap.Int("bytes_out", out.Len()))

	return out.Bytes(), nil
}

// wrapParseError maps walker failures onto the error taxonomy: the
// component encoding is unsupported, input ending mid-structure is
// truncated, everything else is malformed.
func wrapParseError(err error) error {
	if stderrors.Is(err, wasm.ErrUnsupportedComponent) {
		return errors.Unsupported(errors.PhaseParse, err.Error())
	}
	var pe *wasm.ParseError
	if stderrors.As(err, &pe) && stderrors.Is(pe.Err, io.ErrUnexpectedEOF) {
		e := errors.Truncated(errors.PhaseParse, pe.What, pe.Offset)
		e.Cause = err
		return e
	}
	return errors.Malformed(errors.PhaseParse, "invalid module", err)
}
