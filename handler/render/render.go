package render

import (
	"encoding/json"
	"net/http"

	"fraxlend/handler/codes"

	"github.com/sirupsen/logrus"
)

type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	data, err := json.Marshal(v)
	if err != nil {
		logrus.WithError(err).Errorln("render: marshal json")
		return
	}

	if err := json.NewEncoder(w).Encode(dataResponse{Data: data}); err != nil {
		logrus.WithError(err).Debugln("render: write json")
	}
}

// Text render with text
func Text(w http.ResponseWriter, t string) {
	w.Header().Set("Content-Type", "application/text")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(t)); err != nil {
		logrus.WithError(err).Debugln("render: write text")
	}
}

// Error write err with the status & code of its error class
func Error(w http.ResponseWriter, err error) {
	status, code := codes.Get(err)
	write(w, status, code, err)
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	write(w, http.StatusBadRequest, codes.InvalidArguments, err)
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	write(w, http.StatusNotFound, codes.NotFound, err)
}

func write(w http.ResponseWriter, statusCode, errCode int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := errorResponse{Code: errCode, Msg: http.StatusText(statusCode)}
	if statusCode < http.StatusInternalServerError || ResponseErrorMessageAsHint {
		resp.Hint = err.Error()
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logrus.WithError(err).Debugln("render: write error")
	}
}
