package rolematch

// roleAliases maps each canonical role key to the surface forms HR users type.
// The table is fixed at build time and read-only at runtime. Short forms such
// as "ba", "ds" and "swe" are intentional; they are reachable through the
// exact-equality rule only.
var roleAliases = map[string][]string{
	"web development": {
		"web development", "web dev", "web developer", "frontend", "front end",
		"frontend developer", "backend", "back end", "backend developer",
		"fullstack", "full stack", "software engineer", "swe",
	},
	"data science": {
		"data science", "data scientist", "data analyst", "machine learning",
		"ml engineer", "ds",
	},
	"data engineering": {
		"data engineering", "data engineer", "etl developer", "it data engineer",
	},
	"business analyst": {
		"business analyst", "business analysis", "erp business analyst", "ba",
	},
	"mobile development": {
		"mobile development", "mobile developer", "mobile dev",
		"android developer", "ios developer",
	},
	"devops": {
		"devops", "devops engineer", "site reliability engineer", "sre",
		"cloud engineer",
	},
	"ui/ux design": {
		"ui/ux design", "ui/ux", "ui designer", "ux designer", "product designer",
	},
	"quality assurance": {
		"quality assurance", "qa engineer", "software tester", "test engineer", "qa",
	},
}

// Roles returns the canonical role keys, useful for building search filters.
func Roles() []string {
	out := make([]string, 0, len(roleAliases))
	for role := range roleAliases {
		out = append(out, role)
	}
	return out
}
