package postgres

import "fmt"

// TableNames holds dynamically prefixed table names
type TableNames struct {
	Projects        string
	Configs         string
	Groups          string
	GroupMembers    string
	Products        string
	ProjectProducts string
}

// NewTableNames creates table names with the given prefix
func NewTableNames(prefix string) *TableNames {
	return &TableNames{
		Projects:        fmt.Sprintf("%sflyer_projects", prefix),
		Configs:         fmt.Sprintf("%sflyer_configs", prefix),
		Groups:          fmt.Sprintf("%sproduct_groups", prefix),
		GroupMembers:    fmt.Sprintf("%sproduct_group_members", prefix),
		Products:        fmt.Sprintf("%sproducts", prefix),
		ProjectProducts: fmt.Sprintf("%sproject_products", prefix),
	}
}
