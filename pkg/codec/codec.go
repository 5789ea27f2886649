//Package codec provides serialization of tasks sent through the broker
package codec

import (
	"github.com/mnikita/task-dispatch/pkg/common"
)

//Codec defines the serialization contract of broker messages
type Codec interface {
	Encode(task *common.Task) ([]byte, error)
	Decode(data []byte) (*common.Task, error)

	//Name returns the codec identifier
	Name() string
}

const (
	NameJSON    = "json"
	NameMsgpack = "msgpack"
)

//Names lists supported codec identifiers
var Names = []string{NameJSON, NameMsgpack}

//GetCodec returns a codec by name. Defaults to JSON
func GetCodec(name string) Codec {
	switch name {
	case NameMsgpack:
		return &MsgpackCodec{}
	default:
		return &JSONCodec{}
	}
}
