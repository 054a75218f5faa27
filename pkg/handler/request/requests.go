package request

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/yumyai/metagame/pkg/model"
)

// Drag-start on an unsorted fragment
type DragRequest struct {
	FragmentID int
}

// Drop on a bin
type DropRequest struct {
	Bin model.Category
}

// Click on a placed fragment
type ReturnRequest struct {
	FragmentID int
	Bin        model.Category
}

func ParseDragRequest(r *http.Request) (DragRequest, error) {
	id, err := fragmentID(r)
	if err != nil {
		return DragRequest{}, err
	}
	return DragRequest{FragmentID: id}, nil
}

func ParseDropRequest(r *http.Request) (DropRequest, error) {
	bin, err := model.ParseCategory(r.FormValue("bin"))
	if err != nil {
		return DropRequest{}, errors.New("invalid bin value")
	}
	return DropRequest{Bin: bin}, nil
}

func ParseReturnRequest(r *http.Request) (ReturnRequest, error) {
	var errorMessages []string

	id, err := fragmentID(r)
	if err != nil {
		errorMessages = append(errorMessages, err.Error())
	}
	bin, err := model.ParseCategory(r.FormValue("bin"))
	if err != nil {
		errorMessages = append(errorMessages, "invalid bin value")
	}

	if len(errorMessages) > 0 {
		return ReturnRequest{}, errors.New(strings.Join(errorMessages, "; "))
	}
	return ReturnRequest{FragmentID: id, Bin: bin}, nil
}

func fragmentID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(r.FormValue("fragment_id"))
	if err != nil || id < 0 {
		return 0, errors.New("invalid fragment_id value")
	}
	return id, nil
}
