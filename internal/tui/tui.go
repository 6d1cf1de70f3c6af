// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive vault browser started by "ipass browse".
package tui

import (
	"context"

	"github.com/MKhiriev/go-ipass/internal/logger"
	"github.com/MKhiriev/go-ipass/internal/service"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	vault  service.VaultService
	logger *logger.Logger
}

func New(vault service.VaultService, logger *logger.Logger) *TUI {
	return &TUI{vault: vault, logger: logger}
}

// Browse runs the browser until the user quits. passphrase is used for every
// entry opened during the session.
func (t *TUI) Browse(ctx context.Context, passphrase string) error {
	model := newBrowseModel(ctx, t.vault, passphrase, clipboard.WriteAll)

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Err(err).Msg("browser exited with error")
		return err
	}
	return nil
}
