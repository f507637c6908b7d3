package tui

import (
	"fmt"
	"io"

	"github.com/fixhook/fixhook/internal/domain"
)

// Presenter implements domain.Presenter on a terminal. Notices go to out,
// errors to errOut.
type Presenter struct {
	out       io.Writer
	errOut    io.Writer
	width     int
	highlight bool
}

var _ domain.Presenter = (*Presenter)(nil)

// PresenterOption configures a Presenter.
type PresenterOption func(*Presenter)

// WithSyntaxHighlight colors unchanged lines of the diff by language.
func WithSyntaxHighlight(on bool) PresenterOption {
	return func(p *Presenter) { p.highlight = on }
}

func NewPresenter(out, errOut io.Writer, width int, opts ...PresenterOption) *Presenter {
	if width <= 0 {
		width = DefaultDiffWidth
	}
	p := &Presenter{out: out, errOut: errOut, width: width}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Presenter) Info(msg string) {
	fmt.Fprintln(p.out, RenderNotice(NoticeInfo, msg))
}

func (p *Presenter) Success(msg string) {
	fmt.Fprintln(p.out, RenderNotice(NoticeSuccess, msg))
}

func (p *Presenter) Warn(msg string) {
	fmt.Fprintln(p.errOut, RenderNotice(NoticeWarn, msg))
}

func (p *Presenter) Error(msg string) {
	fmt.Fprintln(p.errOut, RenderNotice(NoticeError, msg))
}

func (p *Presenter) ShowDiff(filename, original, fixed string) error {
	var h *highlighter
	if p.highlight {
		h = newHighlighter(filename)
	}
	_, err := fmt.Fprint(p.out, "\n"+renderSideBySide(filename, original, fixed, p.width, h)+"\n")
	return err
}
