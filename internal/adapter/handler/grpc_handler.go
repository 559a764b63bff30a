package handler

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative scan.proto

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/rl1809/epc-inventory/internal/adapter/handler/pb"
	"github.com/rl1809/epc-inventory/internal/core/domain"
	"github.com/rl1809/epc-inventory/internal/core/service"
)

type GRPCHandler struct {
	pb.UnimplementedScanServiceServer
	sessions *service.SessionService
}

func NewGRPCHandler(sessions *service.SessionService) *GRPCHandler {
	return &GRPCHandler{sessions: sessions}
}

func (h *GRPCHandler) OpenSession(ctx context.Context, req *pb.OpenSessionRequest) (*pb.OpenSessionResponse, error) {
	if req.GetTaskId() == "" || req.GetAssetId() == "" {
		return nil, status.Error(codes.InvalidArgument, "task_id and asset_id required")
	}

	sess, err := h.sessions.Open(ctx, req.GetTaskId(), req.GetAssetId())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTaskNotFound):
			return nil, status.Error(codes.NotFound, "task not found")
		case errors.Is(err, service.ErrTaskClosed):
			return nil, status.Error(codes.FailedPrecondition, "task is closed")
		default:
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	return &pb.OpenSessionResponse{
		SessionId:     sess.ID,
		ExpectedCount: int32(sess.ExpectedCount),
	}, nil
}

func (h *GRPCHandler) Scan(ctx context.Context, req *pb.ScanRequest) (*pb.ScanResponse, error) {
	added, err := h.sessions.Append(ctx, req.GetSessionId(), req.GetEpcs())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return nil, status.Error(codes.NotFound, "session not found")
		case errors.Is(err, service.ErrSessionConfirmed):
			return nil, status.Error(codes.FailedPrecondition, "session already confirmed")
		case errors.Is(err, service.ErrEmptyEPC):
			return nil, status.Error(codes.InvalidArgument, "empty epc in batch")
		default:
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	return &pb.ScanResponse{Added: toPBRecords(added)}, nil
}

func (h *GRPCHandler) Confirm(ctx context.Context, req *pb.ConfirmRequest) (*pb.ConfirmResponse, error) {
	count, err := h.sessions.Confirm(req.GetSessionId())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSessionNotFound):
			return nil, status.Error(codes.NotFound, "session not found")
		case errors.Is(err, service.ErrSessionConfirmed):
			return nil, status.Error(codes.FailedPrecondition, "session already confirmed")
		default:
			return nil, status.Error(codes.Internal, "internal error")
		}
	}

	return &pb.ConfirmResponse{
		ConfirmedCount: int32(count.ConfirmedCount),
		ExpectedCount:  int32(count.ExpectedCount),
	}, nil
}

func toPBRecords(records []domain.ScanRecord) []*pb.ScanRecord {
	out := make([]*pb.ScanRecord, 0, len(records))
	for _, rec := range records {
		pbRec := &pb.ScanRecord{
			Epc:    rec.EPC,
			Status: string(rec.Status),
		}
		if rec.Asset != nil {
			pbRec.AssetId = rec.Asset.ID
			pbRec.AssetName = rec.Asset.Name
			pbRec.AssetType = rec.Asset.AssetType
		}
		out = append(out, pbRec)
	}
	return out
}
