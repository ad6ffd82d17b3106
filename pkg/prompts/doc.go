// Package prompts loads and renders the synthesis prompt templates.
//
// Templates live in a YAML file keyed by template name and use
// {placeholder} markers for substitution. When the file is missing or
// malformed the store falls back to built-in templates so synthesis
// always has a usable prompt.
package prompts
