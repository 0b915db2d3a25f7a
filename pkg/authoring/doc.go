// Package authoring walks a user through creating a template from the
// terminal. Prompts go through a PromptDriver so flows can be scripted in
// tests; the default driver is backed by survey.
package authoring
