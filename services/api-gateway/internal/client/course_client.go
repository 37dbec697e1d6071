package client

import (
	"courseplatform/pkg/coursepb"
	"courseplatform/pkg/rpc"

	"google.golang.org/grpc"
)

type CourseClient struct {
	Client coursepb.CourseServiceClient
	conn   *grpc.ClientConn
}

func NewCourseClient(url string) (*CourseClient, error) {
	cc, err := rpc.Dial(url)
	if err != nil {
		return nil, err
	}

	return &CourseClient{
		Client: coursepb.NewCourseServiceClient(cc),
		conn:   cc,
	}, nil
}

func (c *CourseClient) Close() error {
	return c.conn.Close()
}
