package app

import (
	"context"
	"fmt"

	"boardbridge/internal/core"
	"boardbridge/internal/shared"
)

func (s Service) InstallBoard(ctx context.Context, req InstallBoardRequest) error {
	args, err := core.InstallBoardArgs(req.Package, req.Architecture, req.Version)
	if err != nil {
		return err
	}
	item := shared.JoinTarget(req.Package, req.Architecture, req.Version)
	return s.runLogged(ctx, fmt.Sprintf("install board %s", item), args)
}

func (s Service) InstallLibrary(ctx context.Context, req InstallLibraryRequest) error {
	args, err := core.InstallLibraryArgs(req.Name, req.Version)
	if err != nil {
		return err
	}
	item := shared.JoinTarget(req.Name, req.Version)
	return s.runLogged(ctx, fmt.Sprintf("install library %s", item), args)
}

func (s Service) SetPreference(ctx context.Context, key string, value string) error {
	args, err := core.PrefArgs(key, value)
	if err != nil {
		return err
	}
	return s.runLogged(ctx, fmt.Sprintf("set preference %s", key), args)
}

func (s Service) GetPreference(key string) (string, bool, error) {
	return s.Prefs.Get(key)
}
