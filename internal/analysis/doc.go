// Package analysis verifies solver output against the closed-form
// standing wave and estimates the scheme's observed order of accuracy.
package analysis
