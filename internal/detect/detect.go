// Package detect maps file paths and shebang lines to language names so
// the scanner can pick the right comment syntax.
package detect

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Info describes a detected language. An empty Name means unknown.
type Info struct {
	Name string
}

// FromPathAndContent detects the language of a file from its basename and
// extension, falling back to the shebang line for extensionless scripts.
func FromPathAndContent(path string, data []byte) Info {
	if name := detectByPath(path); name != "" {
		return Info{Name: name}
	}
	if name := detectByShebang(data); name != "" {
		return Info{Name: name}
	}
	return Info{}
}

func detectByPath(path string) string {
	base := strings.ToLower(filepath.Base(path))
	if lang, ok := basenameLanguages[base]; ok {
		return lang
	}
	ext := filepath.Ext(base)
	if ext == "" {
		return ""
	}
	if lang, ok := extensionLanguages[ext]; ok {
		return lang
	}
	return ""
}

func detectByShebang(data []byte) string {
	if !bytes.HasPrefix(data, []byte("#!")) {
		return ""
	}
	end := bytes.IndexByte(data, '\n')
	if end == -1 {
		end = len(data)
	}
	line := strings.ToLower(string(data[:end]))
	for key, lang := range shebangLanguages {
		if strings.Contains(line, key) {
			return lang
		}
	}
	return ""
}

// NormalizeLangName lowers and canonicalizes a user-supplied language name.
func NormalizeLangName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if canon, ok := langAliases[n]; ok {
		return canon
	}
	return n
}

// MatchesLang reports whether info is in the allow list. An empty allow
// list accepts every language.
func MatchesLang(info Info, allow []string) bool {
	if len(allow) == 0 {
		return true
	}
	detected := NormalizeLangName(info.Name)
	if detected == "" {
		return false
	}
	for _, raw := range allow {
		if NormalizeLangName(raw) == detected {
			return true
		}
	}
	return false
}

var basenameLanguages = map[string]string{
	"makefile":       "make",
	"gnumakefile":    "make",
	"dockerfile":     "dockerfile",
	"containerfile":  "dockerfile",
	"rakefile":       "ruby",
	"gemfile":        "ruby",
	"vagrantfile":    "ruby",
	"cmakelists.txt": "cmake",
	".bashrc":        "shell",
	".zshrc":         "shell",
	".profile":       "shell",
	".gitignore":     "gitconfig",
	".gitattributes": "gitconfig",
	".env":           "dotenv",
	"go.mod":         "gomod",
	"go.sum":         "gomod",
}

var extensionLanguages = map[string]string{
	".c":          "c",
	".h":          "c",
	".cc":         "cpp",
	".cpp":        "cpp",
	".cxx":        "cpp",
	".hpp":        "cpp",
	".go":         "go",
	".java":       "java",
	".kt":         "kotlin",
	".kts":        "kotlin",
	".scala":      "scala",
	".cs":         "csharp",
	".swift":      "swift",
	".rs":         "rust",
	".zig":        "zig",
	".dart":       "dart",
	".js":         "javascript",
	".jsx":        "javascript",
	".mjs":        "javascript",
	".cjs":        "javascript",
	".ts":         "typescript",
	".tsx":        "typescript",
	".vue":        "html",
	".svelte":     "html",
	".php":        "php",
	".py":         "python",
	".pyi":        "python",
	".rb":         "ruby",
	".erb":        "ruby",
	".pl":         "perl",
	".pm":         "perl",
	".sh":         "shell",
	".bash":       "shell",
	".zsh":        "shell",
	".fish":       "shell",
	".ps1":        "powershell",
	".psm1":       "powershell",
	".bat":        "batch",
	".cmd":        "batch",
	".lua":        "lua",
	".r":          "r",
	".jl":         "julia",
	".ex":         "elixir",
	".exs":        "elixir",
	".erl":        "erlang",
	".hs":         "haskell",
	".ml":         "ocaml",
	".mli":        "ocaml",
	".clj":        "lisp",
	".el":         "lisp",
	".lisp":       "lisp",
	".scm":        "lisp",
	".sql":        "sql",
	".html":       "html",
	".htm":        "html",
	".xml":        "html",
	".md":         "markdown",
	".markdown":   "markdown",
	".css":        "css",
	".scss":       "css",
	".less":       "css",
	".yaml":       "yaml",
	".yml":        "yaml",
	".toml":       "toml",
	".ini":        "ini",
	".cfg":        "ini",
	".properties": "ini",
	".json":       "json",
	".jsonc":      "json",
	".json5":      "json",
	".tf":         "hcl",
	".tfvars":     "hcl",
	".hcl":        "hcl",
	".proto":      "c",
	".thrift":     "c",
	".gradle":     "c",
	".groovy":     "c",
	".cmake":      "cmake",
	".mk":         "make",
	".dockerfile": "dockerfile",
	".vim":        "vim",
	".tex":        "latex",
	".m":          "objective-c",
	".mm":         "objective-c",
}

var shebangLanguages = map[string]string{
	"python": "python",
	"ruby":   "ruby",
	"node":   "javascript",
	"deno":   "javascript",
	"bun":    "javascript",
	"perl":   "perl",
	"bash":   "shell",
	"zsh":    "shell",
	"fish":   "shell",
	"/sh":    "shell",
	"env sh": "shell",
	"pwsh":   "powershell",
	"lua":    "lua",
}

var langAliases = map[string]string{
	"c++":        "cpp",
	"golang":     "go",
	"js":         "javascript",
	"node":       "javascript",
	"ts":         "typescript",
	"py":         "python",
	"rb":         "ruby",
	"sh":         "shell",
	"bash":       "shell",
	"zsh":        "shell",
	"objc":       "objective-c",
	"objectivec": "objective-c",
	"c#":         "csharp",
	"cs":         "csharp",
	"terraform":  "hcl",
	"docker":     "dockerfile",
	"make":       "make",
	"makefile":   "make",
	"yml":        "yaml",
}
