package app

import (
	"errors"
	"net/http"

	"github.com/evently/event-booking-api/api"
	"github.com/evently/event-booking-api/internal/domain"
)

func (app *application) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	user, err := app.userRepo.GetById(r.Context(), userId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.logger.Error("User ID in session but not found in DB", "userId", userId)
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toUserResponse(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) GetUsers(w http.ResponseWriter, r *http.Request) {
	qs := r.URL.Query()

	pagination := domain.Pagination{
		Page:     readInt(qs, "page", 1),
		PageSize: readInt(qs, "pageSize", 20),
		Sort:     readString(qs, "sort", "username"),
	}

	if pagination.Page < 1 || pagination.PageSize < 1 || pagination.PageSize > 100 {
		app.badRequestResponse(w, r, errors.New("invalid pagination parameters"))
		return
	}

	users, metadata, err := app.userRepo.GetAll(r.Context(), pagination)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.UserListResponse{
		Users:    make([]api.UserResponse, 0, len(users)),
		Metadata: toMetadataResponse(metadata),
	}

	for i := range users {
		resp.Users = append(resp.Users, toUserResponse(&users[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toUserResponse(user *domain.User) api.UserResponse {
	return api.UserResponse{
		UserId:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
	}
}

func toMetadataResponse(metadata *domain.Metadata) *api.Metadata {
	if metadata == nil {
		return nil
	}

	return &api.Metadata{
		CurrentPage:  metadata.CurrentPage,
		FirstPage:    metadata.FirstPage,
		LastPage:     metadata.LastPage,
		PageSize:     metadata.PageSize,
		TotalRecords: metadata.TotalRecords,
	}
}
