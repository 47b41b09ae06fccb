package grpcserver

import (
	"context"

	"google.golang.org/grpc"
)

const serviceName = "cardcompare.v1.CatalogService"

// CatalogServiceServer is the read-only catalog surface exposed over gRPC.
type CatalogServiceServer interface {
	ListCards(context.Context, *ListCardsRequest) (*ListCardsResponse, error)
	GetCard(context.Context, *GetCardRequest) (*GetCardResponse, error)
	SearchCards(context.Context, *SearchCardsRequest) (*SearchCardsResponse, error)
	SimilarCards(context.Context, *SimilarCardsRequest) (*SimilarCardsResponse, error)
	Chat(context.Context, *ChatRequest) (*ChatResponse, error)
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogServiceDesc, srv)
}

// unary builds a method handler for one request/response pair.
func unary[Req any, Resp any](method string, call func(CatalogServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(CatalogServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + serviceName + "/" + method,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(CatalogServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

var CatalogServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("ListCards", CatalogServiceServer.ListCards),
		unary("GetCard", CatalogServiceServer.GetCard),
		unary("SearchCards", CatalogServiceServer.SearchCards),
		unary("SimilarCards", CatalogServiceServer.SimilarCards),
		unary("Chat", CatalogServiceServer.Chat),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "cardcompare/v1/catalog",
}

// Client calls CatalogService with the JSON codec.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(ContentSubtype)}, opts...)
	if err := cc.Invoke(ctx, "/"+serviceName+"/"+method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListCards(ctx context.Context, in *ListCardsRequest, opts ...grpc.CallOption) (*ListCardsResponse, error) {
	return invoke[ListCardsResponse](ctx, c.cc, "ListCards", in, opts)
}

func (c *Client) GetCard(ctx context.Context, in *GetCardRequest, opts ...grpc.CallOption) (*GetCardResponse, error) {
	return invoke[GetCardResponse](ctx, c.cc, "GetCard", in, opts)
}

func (c *Client) SearchCards(ctx context.Context, in *SearchCardsRequest, opts ...grpc.CallOption) (*SearchCardsResponse, error) {
	return invoke[SearchCardsResponse](ctx, c.cc, "SearchCards", in, opts)
}

func (c *Client) SimilarCards(ctx context.Context, in *SimilarCardsRequest, opts ...grpc.CallOption) (*SimilarCardsResponse, error) {
	return invoke[SimilarCardsResponse](ctx, c.cc, "SimilarCards", in, opts)
}

func (c *Client) Chat(ctx context.Context, in *ChatRequest, opts ...grpc.CallOption) (*ChatResponse, error) {
	return invoke[ChatResponse](ctx, c.cc, "Chat", in, opts)
}
