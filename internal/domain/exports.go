package domain

import (
	interfaces "qgcalc/internal/domain/interfaces"
	types "qgcalc/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	HistoryRecord = types.HistoryRecord
	Theme         = types.Theme
	DisplayState  = types.DisplayState

	EvalRequest   = types.EvalRequest
	EvalResponse  = types.EvalResponse
	ErrorResponse = types.ErrorResponse
)

const (
	ThemeDark  = types.ThemeDark
	ThemeLight = types.ThemeLight
	ErrorText  = types.ErrorText
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	KVStore        = interfaces.KVStore
	HistoryService = interfaces.HistoryService
	ThemeService   = interfaces.ThemeService
	Evaluator      = interfaces.Evaluator
)
