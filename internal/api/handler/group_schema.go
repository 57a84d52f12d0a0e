package handler

type createGroupRequest struct {
	Name        string   `json:"name"        validate:"required"`
	Description string   `json:"description"`
	CreatedBy   string   `json:"created_by"  validate:"required,email"`
	Members     []string `json:"members"     validate:"dive,email"`
}

type addMembersRequest struct {
	GroupName string   `json:"groupName" validate:"required"`
	Members   []string `json:"members"   validate:"required,min=1,dive,email"`
}
