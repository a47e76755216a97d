package prompt

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestTemplate_Render(t *testing.T) {
	tests := []struct {
		name      string
		template  string
		variables map[string]any
		want      string
	}{
		{
			name:      "single variable",
			template:  "Hello, {name}!",
			variables: map[string]any{"name": "World"},
			want:      "Hello, World!",
		},
		{
			name:      "multiple variables",
			template:  "{greeting}, {name}!",
			variables: map[string]any{"greeting": "Hi", "name": "Alice"},
			want:      "Hi, Alice!",
		},
		{
			name:      "repeated variable",
			template:  "{word} {word}",
			variables: map[string]any{"word": "again"},
			want:      "again again",
		},
		{
			name:      "extra variables ignored",
			template:  "Just {topic}.",
			variables: map[string]any{"topic": "bears", "unused": "x"},
			want:      "Just bears.",
		},
		{
			name:      "non-string value",
			template:  "Count: {n}",
			variables: map[string]any{"n": 42},
			want:      "Count: 42",
		},
		{
			name:      "escaped braces",
			template:  `{{"key": "{value}"}}`,
			variables: map[string]any{"value": "v"},
			want:      `{"key": "v"}`,
		},
		{
			name:      "no variables",
			template:  "plain text",
			variables: nil,
			want:      "plain text",
		},
		{
			name:      "variable with underscore",
			template:  "Task: {task_id}",
			variables: map[string]any{"task_id": "TK-123"},
			want:      "Task: TK-123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := New(tt.template)
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			got, err := tmpl.Render(tt.variables)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if strings.ContainsAny(got, "{}") != strings.ContainsAny(tt.want, "{}") {
				t.Errorf("residual placeholder syntax in %q", got)
			}
		})
	}
}

func TestTemplate_Render_MissingVariable(t *testing.T) {
	tmpl, err := New("{greeting}, {name}!")
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = tmpl.Render(map[string]any{"greeting": "Hi"})
	if !errors.Is(err, ErrMissingVariable) {
		t.Fatalf("expected ErrMissingVariable, got %v", err)
	}
	if !strings.Contains(err.Error(), "name") {
		t.Errorf("error should name the missing variable: %v", err)
	}
}

func TestNew_ParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		template string
		wantErr  error
	}{
		{name: "empty", template: "", wantErr: ErrEmpty},
		{name: "unclosed placeholder", template: "Hello {name", wantErr: ErrParse},
		{name: "empty placeholder", template: "Hello {}", wantErr: ErrParse},
		{name: "lone closing brace", template: "Hello }", wantErr: ErrParse},
		{name: "invalid name", template: "Hello {na me}", wantErr: ErrParse},
		{name: "digit-leading name", template: "Hello {1st}", wantErr: ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.template)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTemplate_Variables(t *testing.T) {
	tmpl, err := New("{a} and {b}, then {a} again")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := []string{"a", "b"}
	if got := tmpl.Variables(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMustNew_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustNew("{unclosed")
}
