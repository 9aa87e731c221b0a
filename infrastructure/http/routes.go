package http

import (
	"stocktake/frontend/counts"
	"stocktake/frontend/createsheet"
	exportspage "stocktake/frontend/exports"
	"stocktake/frontend/sheets"

	"github.com/go-chi/chi/v5"
)

// RegisterSheetRoutes wires the sheet list tab.
func (s *Server) RegisterSheetRoutes(r chi.Router) {
	r.Get("/sheets", sheets.SheetsPageQueryHandler(s.DB, s.ListState))
	r.Post("/sheets/{id}/toggle", sheets.ToggleSheetCommandHandler(s.ListState))
}

// RegisterCountRoutes wires the per-sheet count screen.
func (s *Server) RegisterCountRoutes(r chi.Router) {
	r.Get("/sheets/{id}/count", counts.CountPageQueryHandler(s.DB, s.CountStates))
	r.Post("/sheets/{id}/locations/toggle", counts.ToggleLocationCommandHandler(s.DB, s.CountStates))
	r.Post("/sheets/{id}/items/{itemID}/edit", counts.OpenCountModalCommandHandler(s.DB, s.CountStates))
	r.Post("/sheets/{id}/items/{itemID}/count", counts.SaveCountCommandHandler(s.DB, s.CountStates, s.Audit))
	r.Post("/sheets/{id}/items/cancel", counts.CancelCountCommandHandler(s.CountStates))
}

// RegisterCreateRoutes wires the creation form tab.
func (s *Server) RegisterCreateRoutes(r chi.Router) {
	r.Get("/sheets/new", createsheet.CreateSheetPageQueryHandler())
	r.Post("/sheets/new", createsheet.CreateSheetCommandHandler(s.DB, s.Audit))
}

// RegisterExportRoutes wires sheet downloads.
func (s *Server) RegisterExportRoutes(r chi.Router) {
	r.Get("/exports", exportspage.ExportsPageQueryHandler(s.DB))
	r.Get("/exports/sheet/{id}.pdf", exportspage.SheetPDFHandler(s.DB))
	r.Get("/exports/sheet/{id}.xlsx", exportspage.SheetXLSXHandler(s.DB))
	r.Get("/exports/sheet/{id}.csv", exportspage.SheetCSVHandler(s.DB))
}
