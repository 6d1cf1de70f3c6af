package tui

import "github.com/MKhiriev/go-ipass/models"

type listLoadedMsg struct {
	names []string
	err   error
}

type entryLoadedMsg struct {
	name   string
	record models.EntryRecord
	err    error
}

type deleteDoneMsg struct {
	name string
	err  error
}

type clearStatusMsg struct{}
