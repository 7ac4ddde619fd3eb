package engine

type commentStyle struct {
	linePrefixes []string
	block        []blockDelims
}

type blockDelims struct {
	start string
	end   string
}

var (
	styleC = commentStyle{
		linePrefixes: []string{"//"},
		block:        []blockDelims{{start: "/*", end: "*/"}},
	}
	styleHash = commentStyle{
		linePrefixes: []string{"#"},
	}
	styleHTML = commentStyle{
		block: []blockDelims{{start: "<!--", end: "-->"}},
	}
	styleCSS = commentStyle{
		block: []blockDelims{{start: "/*", end: "*/"}},
	}
	styleSQL = commentStyle{
		linePrefixes: []string{"--"},
		block:        []blockDelims{{start: "/*", end: "*/"}},
	}
	stylePython = commentStyle{
		linePrefixes: []string{"#"},
		block:        []blockDelims{{start: `"""`, end: `"""`}, {start: "'''", end: "'''"}},
	}
	styleRuby = commentStyle{
		linePrefixes: []string{"#"},
		block:        []blockDelims{{start: "=begin", end: "=end"}},
	}
	styleLua = commentStyle{
		linePrefixes: []string{"--"},
		block:        []blockDelims{{start: "--[[", end: "]]"}},
	}
	styleHaskell = commentStyle{
		linePrefixes: []string{"--"},
		block:        []blockDelims{{start: "{-", end: "-}"}},
	}
	styleOCaml = commentStyle{
		block: []blockDelims{{start: "(*", end: "*)"}},
	}
	styleLisp = commentStyle{
		linePrefixes: []string{";"},
	}
	stylePowershell = commentStyle{
		linePrefixes: []string{"#"},
		block:        []blockDelims{{start: "<#", end: "#>"}},
	}
	styleBatch = commentStyle{
		linePrefixes: []string{"REM ", "rem ", "::"},
	}
	styleIni = commentStyle{
		linePrefixes: []string{";", "#"},
	}
	styleHCL = commentStyle{
		linePrefixes: []string{"//", "#"},
		block:        []blockDelims{{start: "/*", end: "*/"}},
	}
	styleVim = commentStyle{
		linePrefixes: []string{"\""},
	}
	styleLatex = commentStyle{
		linePrefixes: []string{"%"},
	}
	styleErlang = commentStyle{
		linePrefixes: []string{"%"},
	}
)

var languageStyleMap = map[string]commentStyle{
	"c":           styleC,
	"cpp":         styleC,
	"objective-c": styleC,
	"go":          styleC,
	"java":        styleC,
	"kotlin":      styleC,
	"scala":       styleC,
	"csharp":      styleC,
	"swift":       styleC,
	"rust":        styleC,
	"zig":         styleC,
	"dart":        styleC,
	"javascript":  styleC,
	"typescript":  styleC,
	"php":         styleC,
	"python":      stylePython,
	"ruby":        styleRuby,
	"perl":        styleHash,
	"shell":       styleHash,
	"powershell":  stylePowershell,
	"batch":       styleBatch,
	"lua":         styleLua,
	"r":           styleHash,
	"julia":       styleHash,
	"elixir":      styleHash,
	"erlang":      styleErlang,
	"haskell":     styleHaskell,
	"ocaml":       styleOCaml,
	"lisp":        styleLisp,
	"sql":         styleSQL,
	"html":        styleHTML,
	"markdown":    styleHTML,
	"css":         styleCSS,
	"yaml":        styleHash,
	"toml":        styleHash,
	"ini":         styleIni,
	"hcl":         styleHCL,
	"cmake":       styleHash,
	"make":        styleHash,
	"dockerfile":  styleHash,
	"gomod":       styleC,
	"gitconfig":   styleHash,
	"dotenv":      styleHash,
	"latex":       styleLatex,
}

func styleForLanguage(lang string) (commentStyle, bool) {
	cs, ok := languageStyleMap[lang]
	return cs, ok
}
