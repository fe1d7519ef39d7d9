package api

import (
	"net/http"
)

func (a *Api) getVariantsHandler(w http.ResponseWriter, r *http.Request) {
	resp := mapSlice(a.profiles.Variants(), mapToVariantResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
