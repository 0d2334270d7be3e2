// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (layout records, diagnostics) and contracts
// (stores, resolver, pipeline service) only.
package domain
