package grpcserver

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"cardcompare/internal/cards"
	"cardcompare/internal/chat"
	"cardcompare/pkg/logger"
	"cardcompare/pkg/models"
)

var _ CatalogServiceServer = (*Server)(nil)

type Server struct {
	Repo    *cards.Repo
	ChatSvc *chat.Service
}

func NewServer(repo *cards.Repo, chatSvc *chat.Service) *Server {
	return &Server{Repo: repo, ChatSvc: chatSvc}
}

func (s *Server) ListCards(ctx context.Context, req *ListCardsRequest) (*ListCardsResponse, error) {
	if req.Limit < 0 {
		return nil, status.Error(codes.InvalidArgument, "limit must be >= 0")
	}
	items := s.Repo.List(cards.ListQuery{
		Bank:  strings.TrimSpace(req.Bank),
		Tags:  req.Tags,
		Limit: int(req.Limit),
	})
	return &ListCardsResponse{Total: int32(len(items)), Items: items}, nil
}

func (s *Server) GetCard(ctx context.Context, req *GetCardRequest) (*GetCardResponse, error) {
	id := strings.TrimSpace(req.ID)
	slug := strings.TrimSpace(req.Slug)
	if id == "" && slug == "" {
		return nil, status.Error(codes.InvalidArgument, "id or slug is required")
	}

	var card *models.Card
	if id != "" {
		card = s.Repo.GetByID(id)
	} else {
		card = s.Repo.GetBySlug(slug)
	}
	if card == nil {
		return nil, status.Error(codes.NotFound, "card not found")
	}
	return &GetCardResponse{Card: card}, nil
}

func (s *Server) SearchCards(ctx context.Context, req *SearchCardsRequest) (*SearchCardsResponse, error) {
	items := s.Repo.Search(req.Query)
	return &SearchCardsResponse{
		Query: strings.TrimSpace(req.Query),
		Total: int32(len(items)),
		Items: items,
	}, nil
}

func (s *Server) SimilarCards(ctx context.Context, req *SimilarCardsRequest) (*SimilarCardsResponse, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	return &SimilarCardsResponse{Items: s.Repo.GetSimilar(id)}, nil
}

func (s *Server) Chat(ctx context.Context, req *ChatRequest) (*ChatResponse, error) {
	if s.ChatSvc == nil {
		return nil, status.Error(codes.Unimplemented, "chat is disabled")
	}
	reply, err := s.ChatSvc.Answer(ctx, req.Message)
	if errors.Is(err, chat.ErrEmptyMessage) {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err != nil {
		return nil, status.Error(codes.Internal, "failed to answer")
	}
	return &ChatResponse{Text: reply.Text, Cards: reply.Cards}, nil
}

// UnaryLogger logs each call with its status code and duration, and turns a
// handler panic into codes.Internal.
func UnaryLogger(log *logger.Logger) grpc.UnaryServerInterceptor {
	log = logger.OrNop(log)
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				log.Error("grpc panic", "method", info.FullMethod, "panic", r)
				resp, err = nil, status.Error(codes.Internal, "internal error")
			}
			code := status.Code(err)
			kv := []interface{}{
				"method", info.FullMethod,
				"code", code.String(),
				"duration_ms", time.Since(start).Milliseconds(),
			}
			switch code {
			case codes.OK, codes.NotFound, codes.InvalidArgument:
				log.Info("grpc call", kv...)
			default:
				log.Warn("grpc call", append(kv, "error", err)...)
			}
		}()
		return handler(ctx, req)
	}
}

// NewGRPCServer builds a grpc.Server with tracing and call logging and
// registers the catalog service on it.
func NewGRPCServer(srv CatalogServiceServer, log *logger.Logger, opts ...grpc.ServerOption) *grpc.Server {
	opts = append([]grpc.ServerOption{
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(UnaryLogger(log)),
	}, opts...)
	gs := grpc.NewServer(opts...)
	RegisterCatalogServiceServer(gs, srv)
	return gs
}
