package nlp

// SkillVariants returns normalized variants for matching (synonyms/aliases).
// Kept intentionally small; extend as needed.
func SkillVariants(skill string) []string {
	base := NormalizeSkill(skill)
	if base == "" {
		return []string{}
	}
	var out []string
	seen := map[string]struct{}{}
	add := func(s string) {
		s = NormalizeSkill(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}

	add(base)

	switch base {
	case "postgres":
		add("postgresql")
	case "postgresql":
		add("postgres")
	case "k8s":
		add("kubernetes")
	case "kubernetes":
		add("k8s")
	case "golang":
		add("go")
	case "go":
		add("golang")
	case "js":
		add("javascript")
	case "javascript":
		add("js")
	case "ts":
		add("typescript")
	case "typescript":
		add("ts")
	case "node":
		add("node js")
	case "node js":
		add("node")
	case "aws":
		add("amazon web services")
	case "amazon web services":
		add("aws")
	}

	return out
}
