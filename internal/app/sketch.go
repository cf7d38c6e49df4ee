package app

import (
	"context"
	"fmt"

	"boardbridge/internal/core"
)

func (s Service) Verify(ctx context.Context, req SketchRequest) error {
	target, err := s.resolveTarget()
	if err != nil {
		return err
	}
	args, err := core.VerifyArgs(ctx, target, req.Port, req.Sketch, s.Verbose)
	if err != nil {
		return err
	}
	return s.runLogged(ctx, fmt.Sprintf("verify %s", req.Sketch), args)
}

// Upload closes any serial-monitor session on the port before the
// toolchain process launches; the monitor and the uploader must never hold
// the port at the same time.
func (s Service) Upload(ctx context.Context, req SketchRequest) error {
	target, err := s.resolveTarget()
	if err != nil {
		return err
	}
	args, err := core.UploadArgs(ctx, target, req.Port, req.Sketch, s.Verbose)
	if err != nil {
		return err
	}
	if s.Monitor.IsOpen(req.Port) {
		if err := s.Monitor.Close(req.Port); err != nil {
			return err
		}
	}
	return s.runLogged(ctx, fmt.Sprintf("upload %s", req.Sketch), args)
}

// resolveTarget reads the current selection and derives the target string.
// The missing-selection condition is surfaced on the sink and aborts the
// operation before any process invocation.
func (s Service) resolveTarget() (string, error) {
	selection, err := s.Selection.Current()
	if err != nil {
		return "", err
	}
	target, err := core.ResolveTarget(selection)
	if err != nil {
		if core.IsNoBoardSelected(err) {
			s.Sink.Show()
			s.Sink.Error("no board selected; choose a board before building")
		}
		return "", err
	}
	return target, nil
}
