package client

import (
	"courseplatform/pkg/authpb"
	"courseplatform/pkg/rpc"

	"google.golang.org/grpc"
)

type AuthClient struct {
	Client authpb.AuthServiceClient
	conn   *grpc.ClientConn
}

func NewAuthClient(url string) (*AuthClient, error) {
	cc, err := rpc.Dial(url)
	if err != nil {
		return nil, err
	}

	return &AuthClient{
		Client: authpb.NewAuthServiceClient(cc),
		conn:   cc,
	}, nil
}

func (c *AuthClient) Close() error {
	return c.conn.Close()
}
