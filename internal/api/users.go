package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/SergeyKozhin/user-profiles-backend/internal/model"
	"github.com/SergeyKozhin/user-profiles-backend/internal/pkg/validator"
)

// getUsersHandler returns the visible users. The optional search and favorites query
// parameters update the session filter first, the way typing in the search box does.
func (a *Api) getUsersHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveSession)
		return
	}

	query := r.URL.Query()
	if query.Has("search") || query.Has("favorites") {
		filter := session.Filter()

		if query.Has("search") {
			filter.Search = query.Get("search")
		}

		if query.Has("favorites") {
			favoritesOnly, err := strconv.ParseBool(query.Get("favorites"))
			if err != nil {
				a.badRequestResponse(w, r, fmt.Errorf("invalid favorites value %q", query.Get("favorites")))
				return
			}
			filter.FavoritesOnly = favoritesOnly
		}

		if err := session.SetFilter(filter); err != nil {
			a.sessionErrorResponse(w, r, err)
			return
		}
	}

	a.writeView(w, r, session)
}

func (a *Api) getUserHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveSession)
		return
	}

	id, ok := userIDFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUserID)
		return
	}

	user, err := session.User(id)
	if err != nil {
		a.sessionErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToUserResp(user, session.Favorites()), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) updateUserHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveSession)
		return
	}

	id, ok := userIDFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUserID)
		return
	}

	if !session.Variant().Mutations {
		a.sessionErrorResponse(w, r, model.ErrFeatureDisabled)
		return
	}

	// id, liked and favorite are accepted so clients can send back the record they got, and are ignored.
	req := &struct {
		ID       int64       `json:"id"`
		Liked    bool        `json:"liked"`
		Favorite bool        `json:"favorite"`
		Name     string      `json:"name"`
		Username string      `json:"username"`
		Email    string      `json:"email"`
		Phone    string      `json:"phone"`
		Website  string      `json:"website"`
		Address  addressResp `json:"address"`
		Company  companyResp `json:"company"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	upd := &model.UserUpdate{
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Website:  req.Website,
		Address: model.Address{
			Street:  req.Address.Street,
			Suite:   req.Address.Suite,
			City:    req.Address.City,
			Zipcode: req.Address.Zipcode,
		},
		Company: model.Company{
			Name: req.Company.Name,
		},
	}

	v := validator.New()
	validateUserUpdate(v, upd)

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	user, err := session.Update(id, upd)
	if err != nil {
		a.sessionErrorResponse(w, r, err)
		return
	}

	resp := &struct {
		User    *userResp `json:"user"`
		Message string    `json:"message"`
	}{
		User:    mapToUserResp(user, session.Favorites()),
		Message: "User updated successfully",
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func validateUserUpdate(v *validator.Validator, u *model.UserUpdate) {
	v.Check(validator.NotBlank(u.Name), "name", "Please input the name!")
	v.Check(validator.NotBlank(u.Username), "username", "Please input the username!")
	v.Check(validator.NotBlank(u.Email), "email", "Please input the email!")
	v.Check(validator.Matches(u.Email, validator.EmailRX), "email", "Please enter a valid email!")
	v.Check(validator.NotBlank(u.Phone), "phone", "Please input the phone!")
	v.Check(validator.NotBlank(u.Website), "website", "Please input the website!")
	v.Check(validator.NotBlank(u.Address.Street), "address.street", "Street is required!")
	v.Check(validator.NotBlank(u.Address.Suite), "address.suite", "Suite is required!")
	v.Check(validator.NotBlank(u.Address.City), "address.city", "City is required!")
	v.Check(validator.NotBlank(u.Address.Zipcode), "address.zipcode", "Zipcode is required!")
	v.Check(validator.NotBlank(u.Company.Name), "company.name", "Please input the company name!")
}

func (a *Api) deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveSession)
		return
	}

	id, ok := userIDFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUserID)
		return
	}

	if err := session.Delete(id); err != nil {
		a.sessionErrorResponse(w, r, err)
		return
	}

	resp := &struct {
		Message string `json:"message"`
	}{
		Message: "User deleted successfully",
	}

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) toggleLikeHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := sessionFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveSession)
		return
	}

	id, ok := userIDFromContext(r)
	if !ok {
		a.serverErrorResponse(w, r, errCantRetrieveUserID)
		return
	}

	user, err := session.ToggleLike(id)
	if err != nil {
		a.sessionErrorResponse(w, r, err)
		return
	}

	if err := a.writeJSON(w, http.StatusOK, mapToUserResp(user, session.Favorites()), nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
