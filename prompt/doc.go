// Package prompt provides compiled prompt templates with variable substitution.
//
// Templates use single-brace {variable} syntax and are parsed once at
// construction; rendering is a pure, single-pass substitution with no
// conditionals and no recursive expansion.
//
// # Syntax
//
// Variables use single braces:
//
//	Tell me a joke about {topic}.
//
// Literal braces are escaped by doubling:
//
//	Schema: {{"name": ...}}
//
// # Text Templates
//
//	tmpl, err := prompt.New("Hello, {name}!")
//	text, err := tmpl.Render(map[string]any{"name": "World"})
//	// text: "Hello, World!"
//
// Every variable referenced by the template must be supplied at render time
// or Render fails with ErrMissingVariable. Extra variables are ignored.
//
// # Chat Templates
//
// A chat template is an ordered sequence of (role, template) segments.
// Each segment renders independently; the results combine, in original
// order, into a chat.Conversation:
//
//	ct, err := prompt.NewChat(
//	    prompt.Segment{Role: chat.RoleSystem, Text: "Translate to {language}."},
//	    prompt.Segment{Role: chat.RoleUser, Text: "{text}"},
//	)
//	conv, err := ct.Render(map[string]any{"language": "Spanish", "text": "Good morning!"})
//
// # Prompt Libraries
//
// Library loads named templates from a directory of .yaml, .toml, or .json
// prompt files and can hot-reload them when files change:
//
//	lib, err := prompt.NewLibrary("./prompts")
//	tmpl, ok := lib.Chat("translate")
package prompt
