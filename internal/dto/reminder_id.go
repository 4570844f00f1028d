package dto

import (
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type GetReminderRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

func (r *GetReminderRequest) ToUUID() (uuid.UUID, error) {
	return uuid.Parse(r.ID)
}

func BindReminderRequest(g *ginext.Context) (*GetReminderRequest, error) {
	var req GetReminderRequest
	if err := g.BindUri(&req); err != nil {
		return nil, err
	}
	return &req, nil
}
