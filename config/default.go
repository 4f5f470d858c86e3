package config

// GetDefault returns the built-in rule set: classic "new:"/"chg:"/"fix:"
// subject prefixes routed into New/Changes/Fix sections, audience prefixes
// stripped, and marker words like "@minor" hiding a commit entirely.
func GetDefault() Config {
	return Config{
		Ignore: []string{
			`@minor`, `!minor`,
			`@cosmetic`, `!cosmetic`,
			`@refactor`, `!refactor`,
			`@wip`, `!wip`,
		},
		Replace: []Replacement{
			{
				Pattern: `^([cC]hg|[fF]ix|[nN]ew)\s*:\s*((dev|use?r|pkg|test|doc)\s*:\s*)?([^\n]*)$`,
				With:    `$4`,
			},
		},
		Sections: []Section{
			{
				Label:    "New",
				Patterns: []string{`^[nN]ew\s*:\s*((dev|use?r|pkg|test|doc)\s*:\s*)?([^\n]*)$`},
			},
			{
				Label:    "Changes",
				Patterns: []string{`^[cC]hg\s*:\s*((dev|use?r|pkg|test|doc)\s*:\s*)?([^\n]*)$`},
			},
			{
				Label:    "Fix",
				Patterns: []string{`^[fF]ix\s*:\s*((dev|use?r|pkg|test|doc)\s*:\s*)?([^\n]*)$`},
			},
			{
				Label: "Other",
			},
		},
		UnreleasedLabel: "unreleased",
		TagFilter:       `v?\d+\.\d+(\.\d+)?`,
		BodySplit:       `\n\n`,
	}
}
