package session

import (
	"errors"
	"strconv"

	"github.com/arloliu/go-meterkit/capsule"
	"github.com/arloliu/go-meterkit/crc"
	"github.com/arloliu/go-meterkit/hexutil"
	"github.com/arloliu/go-meterkit/kernel"
)

// Test frame: 68 | device no (4) | counter (2) | length (1) | payload | crc16/modbus (2) | 16

type meterCmd struct {
	capsule.CmdDefaults
	code string
}

func (c meterCmd) Code() string  { return c.code }
func (c meterCmd) Title() string { return c.code }

var (
	errShortFrame = errors.New("frame too short")

	readingSet = kernel.DecodingSet{
		kernel.DecodeDef{Name: "累计流量", Len: 4, Type: kernel.Uint32(0.01), Unit: kernel.SymbolCubicMeter},
		kernel.DecodeDef{Name: "阀门状态", Len: 1, Table: []kernel.EnumEntry{
			{Key: kernel.Uint8Key(0), Label: "开"},
			{Key: kernel.Uint8Key(1), Label: "关"},
		}},
	}

	valveSet = kernel.EncodingSet{
		kernel.EncodeDef{Key: "valve", Name: "阀门控制", Len: 1, Type: kernel.Uint8(1)},
		kernel.EncodeDef{Key: "delay", Name: "延时", Len: 2, Type: kernel.Uint16(1), Default: "0", Optional: true},
	}
)

type meterCodec struct{}

func (meterCodec) Identify(frame []byte) (Identity, error) {
	if len(frame) < 11 {
		return Identity{}, errShortFrame
	}

	return Identity{
		DeviceNo:      hexutil.BytesToHex(frame[1:5]),
		UpstreamCount: hexutil.BytesToHex(frame[5:7]),
	}, nil
}

func (meterCodec) Decode(ex *Exchange[meterCmd], r *kernel.Reader) error {
	steps := []func() error{
		func() error {
			return r.ReadAndTranslateHead(1, kernel.TranslatorOf(kernel.FieldCompareDecoder{Title: "帧头", Target: []byte{0x68}}))
		},
		func() error {
			return r.ReadAndTranslateTail(1, kernel.TranslatorOf(kernel.FieldCompareDecoder{Title: "帧尾", Target: []byte{0x16}}))
		},
		func() error { return r.ReadAndTranslateCRC(2, crc.Modbus, 0, -3) },
		func() error {
			return r.ReadAndTranslateHead(4, kernel.TranslatorOf(kernel.FieldConvertDecoder{Title: "表号", FieldType: kernel.StringOrBCD()}))
		},
		func() error {
			return r.ReadAndTranslateHead(2, kernel.TranslatorOf(kernel.FieldConvertDecoder{Title: "上行计数", FieldType: kernel.Uint16(1)}))
		},
		func() error {
			return r.ReadAndTranslateHead(1, kernel.TranslatorOf(kernel.FieldConvertDecoder{Title: "长度", FieldType: kernel.Uint8(1)}))
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	payload, err := r.ReadRemaining()
	if err != nil {
		return err
	}
	plain, err := ex.Decrypt(payload)
	if err != nil {
		return err
	}
	ex.Capsule.SetTempBytes(plain)

	sub := kernel.NewReader(plain)
	err = kernel.AutoDecode(readingSet, sub)
	for _, f := range sub.Fields() {
		r.SetCurrentField(f)
	}
	if err != nil {
		return err
	}
	ex.Capsule.SetCmd(meterCmd{code: "reading"})

	return nil
}

func (meterCodec) Encode(ex *Exchange[meterCmd], w *kernel.Writer, params map[string]string) error {
	no, ok := ex.Carrier.DeviceNo()
	if !ok {
		return errShortFrame
	}

	w.WriteBytes("帧头", []byte{0x68}, "68")
	w.WriteBytes("表号", no.Bytes(), no.Hex())
	if err := w.WriteField("下行计数", kernel.Uint16(1), "1"); err != nil {
		return err
	}
	if err := w.WritePlaceholder("len", 1); err != nil {
		return err
	}

	payload := kernel.NewWriter()
	if _, err := kernel.AutoEncode(valveSet, params, payload); err != nil {
		return err
	}
	enc, err := ex.Encrypt(payload.Buffer())
	if err != nil {
		return err
	}
	if err := w.RewritePlaceholder("len", "长度", []byte{byte(len(enc))}, strconv.Itoa(len(enc))); err != nil {
		return err
	}
	w.WriteBytes("数据", enc, hexutil.BytesToHex(enc))

	if err := w.WritePlaceholder("crc", 2); err != nil {
		return err
	}
	w.WriteBytes("帧尾", []byte{0x16}, "16")

	return w.WriteCRC(crc.Modbus, 0, -3, "crc", false)
}

// buildFrame assembles an upstream test frame around payload.
func buildFrame(deviceNo []byte, count uint16, payload []byte) []byte {
	frame := []byte{0x68}
	frame = append(frame, deviceNo...)
	frame = append(frame, byte(count>>8), byte(count))
	frame = append(frame, byte(len(payload)))
	frame = append(frame, payload...)
	frame = append(frame, crc.CalculateBytes(crc.Modbus, frame, false)...)

	return append(frame, 0x16)
}
