package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
)

func TestJSONCodecRegistered(t *testing.T) {
	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)

	in := &UploadResultRequest{Actor: &Actor{Role: "admin"}, Id: "2024/001", Level: "100L", Course: "CSC101", Units: 3, Score: 75}
	data, err := codec.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"course":"CSC101"`)

	var out UploadResultRequest
	require.NoError(t, codec.Unmarshal(data, &out))
	assert.Equal(t, *in.Actor, *out.Actor)
	assert.Equal(t, in.Score, out.Score)
}
