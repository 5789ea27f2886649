package codec_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/mnikita/task-dispatch/pkg/codec"
	"github.com/mnikita/task-dispatch/pkg/common"
	"github.com/stretchr/testify/assert"
)

func newTask() *common.Task {
	return &common.Task{
		TaskId: "0b9c8a3e-7a1c-4d6e-9f3b-2f1d5c7e8a90",
		Name:   "alerts.send",
		Args:   common.Args{common.NewInt(1), common.NewString("hello")},
		Kwargs: common.Kwargs{
			"user_id": common.NewInt(5),
			"force":   common.NewBool(true),
			"tags":    common.NewList(common.NewString("a")),
		},
		SentAt: time.Unix(1600000000, 0).UTC(),
	}
}

func TestCodecRoundTrip(t *testing.T) {
	for _, name := range codec.Names {
		t.Run(name, func(t *testing.T) {
			c := codec.GetCodec(name)

			assert.Equal(t, name, c.Name())

			task := newTask()
			task.Id = 13

			data, err := c.Encode(task)
			assert.Nil(t, err)

			decoded, err := c.Decode(data)
			assert.Nil(t, err)

			//broker job id is never serialized
			assert.Equal(t, uint64(0), decoded.Id)

			assert.True(t, task.SentAt.Equal(decoded.SentAt))

			task.Id = 0
			task.SentAt = time.Time{}
			decoded.SentAt = time.Time{}

			assert.Equal(t, task, decoded)
		})
	}
}

func TestJSONWireFormat(t *testing.T) {
	data, err := codec.GetCodec(codec.NameJSON).Encode(newTask())

	assert.Nil(t, err)
	assert.JSONEq(t, `{"id":"0b9c8a3e-7a1c-4d6e-9f3b-2f1d5c7e8a90","task":"alerts.send",`+
		`"args":[1,"hello"],"kwargs":{"user_id":5,"force":true,"tags":["a"]},`+
		`"sent_at":"2020-09-13T12:26:40Z"}`, string(data))
}

func TestDefaultCodec(t *testing.T) {
	assert.Equal(t, codec.NameJSON, codec.GetCodec("").Name())
	assert.Equal(t, codec.NameJSON, codec.GetCodec("yaml").Name())
}

func TestDecodeInvalid(t *testing.T) {
	for _, name := range codec.Names {
		_, err := codec.GetCodec(name).Decode([]byte("add"))

		assert.NotNil(t, err, name)
	}
}

func TestNumberLiteralsRoundTrip(t *testing.T) {
	literals := []string{"12345678901234567890", "1.0", "1e400", "-0", "3.5", "-7", "0.1", "1E2"}

	for _, name := range codec.Names {
		t.Run(name, func(t *testing.T) {
			c := codec.GetCodec(name)

			task := newTask()
			task.Args = common.Args{}

			for _, literal := range literals {
				task.Args = append(task.Args, common.NewNumber(json.Number(literal)))
			}

			task.Kwargs = common.Kwargs{"nested": common.NewList(common.NewNumber("1.0"))}

			data, err := c.Encode(task)
			assert.Nil(t, err)

			decoded, err := c.Decode(data)
			assert.Nil(t, err)

			for i, literal := range literals {
				n, err := decoded.Args[i].AsNumber()

				assert.Nil(t, err, literal)
				assert.Equal(t, json.Number(literal), n)
			}

			nested, err := decoded.Kwargs["nested"].AsList()
			assert.Nil(t, err)

			n, err := nested[0].AsNumber()
			assert.Nil(t, err)
			assert.Equal(t, json.Number("1.0"), n)
		})
	}
}

func TestMsgpackInvalidNumberLiteral(t *testing.T) {
	//fixext1 carrying "x" under the number literal ext id
	data := []byte{0x81, 0xa4, 'a', 'r', 'g', 's', 0x91, 0xd4, byte(common.NumberExtId), 'x'}

	_, err := codec.GetCodec(codec.NameMsgpack).Decode(data)

	assert.NotNil(t, err)
}
