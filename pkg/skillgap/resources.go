package skillgap

import "strings"

// Resource is one learning pointer attached to a required skill.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// resourceTable maps normalized skill names to curated learning resources.
var resourceTable = map[string][]Resource{
	"python": {
		{Title: "The Python Tutorial", URL: "https://docs.python.org/3/tutorial/"},
		{Title: "Automate the Boring Stuff", URL: "https://automatetheboringstuff.com/"},
	},
	"javascript": {
		{Title: "MDN JavaScript Guide", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide"},
		{Title: "javascript.info", URL: "https://javascript.info/"},
	},
	"sql": {
		{Title: "SQLBolt interactive lessons", URL: "https://sqlbolt.com/"},
		{Title: "PostgreSQL Tutorial", URL: "https://www.postgresqltutorial.com/"},
	},
	"react": {
		{Title: "React official docs", URL: "https://react.dev/learn"},
	},
	"aws": {
		{Title: "AWS Skill Builder", URL: "https://skillbuilder.aws/"},
	},
	"go": {
		{Title: "A Tour of Go", URL: "https://go.dev/tour/"},
		{Title: "Go by Example", URL: "https://gobyexample.com/"},
	},
	"docker": {
		{Title: "Docker Getting Started", URL: "https://docs.docker.com/get-started/"},
	},
	"kubernetes": {
		{Title: "Kubernetes Basics", URL: "https://kubernetes.io/docs/tutorials/kubernetes-basics/"},
	},
	"typescript": {
		{Title: "TypeScript Handbook", URL: "https://www.typescriptlang.org/docs/handbook/intro.html"},
	},
}

// defaultResources are templates applied when a skill has no curated entry.
// The literal placeholder SKILL_NAME is substituted with the actual skill.
var defaultResources = []Resource{
	{Title: "Search courses for SKILL_NAME", URL: "https://www.coursera.org/search?query=SKILL_NAME"},
	{Title: "SKILL_NAME questions on Stack Overflow", URL: "https://stackoverflow.com/questions/tagged/SKILL_NAME"},
}

// ResourcesFor returns learning resources for a normalized skill name,
// falling back to the default templates.
func ResourcesFor(skill string) []Resource {
	if rs, ok := resourceTable[skill]; ok {
		out := make([]Resource, len(rs))
		copy(out, rs)
		return out
	}
	out := make([]Resource, 0, len(defaultResources))
	for _, tpl := range defaultResources {
		out = append(out, Resource{
			Title: strings.ReplaceAll(tpl.Title, "SKILL_NAME", skill),
			URL:   strings.ReplaceAll(tpl.URL, "SKILL_NAME", skill),
		})
	}
	return out
}
