package codec

import (
	"encoding/json"

	"github.com/mnikita/task-dispatch/pkg/common"
)

//JSONCodec encodes tasks as JSON
type JSONCodec struct{}

func (c *JSONCodec) Encode(task *common.Task) ([]byte, error) {
	return json.Marshal(task)
}

func (c *JSONCodec) Decode(data []byte) (*common.Task, error) {
	var t common.Task
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *JSONCodec) Name() string { return NameJSON }
