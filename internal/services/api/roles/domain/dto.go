// Package domain holds DTOs and ports for the role keyword directory
package domain

// Sources a directory snapshot can be built from
const (
	SourceEmbedded = "embedded"
	SourcePG       = "pg"
)

// RoleList lists the known job roles
type RoleList struct {
	Roles  []string `json:"roles" example:"Data Scientist,Software Engineer"`
	Source string   `json:"source" example:"embedded"`
}

// RoleKeywords is the keyword list of one role
type RoleKeywords struct {
	Role     string   `json:"role" example:"Software Engineer"`
	Keywords []string `json:"keywords" example:"algorithm,api,class"`
}

// ReloadResult reports a directory reload
type ReloadResult struct {
	Roles    int    `json:"roles" example:"10"`
	Source   string `json:"source" example:"pg"`
	Keywords int    `json:"keywords" example:"274"`
}
