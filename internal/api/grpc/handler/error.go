package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dtroode/voicegate/internal/service"
)

func handleError(err error) error {
	switch {
	case errors.Is(err, service.ErrEmptyAudio):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, "internal server error")
	}
}
