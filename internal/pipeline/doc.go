// Package pipeline assembles the generated entry document: it renders the
// optional about-panel markdown and composes the viewer HTML from embedded
// templates, keeping page-list data separate from markup structure.
package pipeline
