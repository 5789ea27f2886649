package codec

import (
	"github.com/mnikita/task-dispatch/pkg/common"
	"github.com/vmihailenco/msgpack/v5"
)

//MsgpackCodec encodes tasks as MessagePack
type MsgpackCodec struct{}

func (c *MsgpackCodec) Encode(task *common.Task) ([]byte, error) {
	return msgpack.Marshal(task)
}

func (c *MsgpackCodec) Decode(data []byte) (*common.Task, error) {
	var t common.Task
	if err := msgpack.Unmarshal(data, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *MsgpackCodec) Name() string { return NameMsgpack }
