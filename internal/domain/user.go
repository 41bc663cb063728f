package domain

type User struct {
	ID           int32   `json:"id"`
	Username     string  `json:"username"`
	Name         string  `json:"name"`
	Email        string  `json:"email,omitempty"`
	Skills       string  `json:"skills"` // comma-separated list, free-form
	LinkedIn     string  `json:"linkedin,omitempty"`
	GitHub       string  `json:"github,omitempty"`
	Education    string  `json:"education,omitempty"`
	Photo        *string `json:"photo,omitempty"` // stored filename of the uploaded photo
	Availability bool    `json:"availability"`
	PasswordHash string  `json:"-"`
	CreatedOn    string  `json:"created_on"`
	UpdatedOn    string  `json:"updated_on"`
}

// SkillList splits the comma-separated skills field into trimmed entries.
func (u *User) SkillList() []string {
	return SplitSkills(u.Skills)
}
