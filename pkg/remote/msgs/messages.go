package msgs

import (
	"fmt"

	"github.com/golang/protobuf/proto"

	"github.com/robotalks/roboticscape.go/pkg/binding"
	fx "github.com/robotalks/roboticscape.go/pkg/framework"
	pb "github.com/robotalks/roboticscape.go/pkg/proto/rc/v1"
)

// TypeID Groups
const (
	GroupCommand uint32 = 0x00000000
	GroupInvoke  uint32 = 0x00010000
	GroupCustom  uint32 = 0x7f000000 // base group id for custom messages.
)

// TypeIDs
const (
	CommandOKTypeID    uint32 = GroupCommand | TypeIDMaskReply | 0x0000
	CommandErrTypeID   uint32 = GroupCommand | TypeIDMaskReply | 0x0001
	InvokeTypeID       uint32 = GroupInvoke | 0x0000
	InvokeResultTypeID uint32 = InvokeTypeID | TypeIDMaskReply
	MethodsQueryTypeID uint32 = GroupInvoke | 0x0001
	MethodListTypeID   uint32 = MethodsQueryTypeID | TypeIDMaskReply
)

// CommandOK is the generic reply indicating success for commands.
type CommandOK struct {
	pb.CommandOK
}

// NewCommandOK creates a CommandOK.
func NewCommandOK() *CommandOK {
	return &CommandOK{}
}

// NewMessage implements Message.
func (m *CommandOK) NewMessage() fx.Message { return &CommandOK{} }

// TypeID implements SerializableMessage.
func (m *CommandOK) TypeID() uint32 { return CommandOKTypeID }

// Serializable implements SerializableMessage.
func (m *CommandOK) Serializable() proto.Message { return &m.CommandOK }

// CommandErr is the generic message representing command error.
type CommandErr struct {
	pb.CommandErr
}

// NewCommandErr creates a CommandErr from an error.
func NewCommandErr(err error) *CommandErr {
	return NewCommandErrFromMsg(err.Error())
}

// NewCommandErrFromMsg creates a CommandErr.
func NewCommandErrFromMsg(message string) *CommandErr {
	return &CommandErr{
		CommandErr: pb.CommandErr{
			Message: message,
		},
	}
}

// NewMessage implements Message.
func (m *CommandErr) NewMessage() fx.Message { return &CommandErr{} }

// TypeID implements SerializableMessage.
func (m *CommandErr) TypeID() uint32 { return CommandErrTypeID }

// Serializable implements SerializableMessage.
func (m *CommandErr) Serializable() proto.Message { return &m.CommandErr }

// Error implements error.
func (m *CommandErr) Error() string { return m.Message }

// Invoke calls a method of the module.
type Invoke struct {
	pb.Invoke
}

// NewInvoke creates an Invoke.
func NewInvoke(name string, args ...binding.Value) *Invoke {
	m := &Invoke{Invoke: pb.Invoke{Name: name}}
	if len(args) > 0 {
		m.Args = make([]*pb.Value, len(args))
		for n, arg := range args {
			m.Args[n] = ValueToPB(arg)
		}
	}
	return m
}

// NewInvokeArgs creates an Invoke from loosely typed arguments. Strings which
// aren't value literals are sent as text and converted by the server, so
// legacy argument defaults of the method still apply.
func NewInvokeArgs(name string, vals ...interface{}) (*Invoke, error) {
	m := &Invoke{Invoke: pb.Invoke{Name: name}}
	for n, val := range vals {
		v, err := binding.ValueOf(val)
		if err == nil {
			m.Args = append(m.Args, ValueToPB(v))
			continue
		}
		s, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("argument %d: %w", n+1, err)
		}
		m.Args = append(m.Args, &pb.Value{Kind: pb.Value_TEXT, Text: s})
	}
	return m, nil
}

// Values converts the arguments, text arguments are returned as strings.
func (m *Invoke) Values() []interface{} {
	vals := make([]interface{}, len(m.Args))
	for n, arg := range m.Args {
		if arg != nil && arg.Kind == pb.Value_TEXT {
			vals[n] = arg.Text
			continue
		}
		vals[n] = ValueFromPB(arg)
	}
	return vals
}

// NewMessage implements Message.
func (m *Invoke) NewMessage() fx.Message { return &Invoke{} }

// TypeID implements SerializableMessage.
func (m *Invoke) TypeID() uint32 { return InvokeTypeID }

// Serializable implements SerializableMessage.
func (m *Invoke) Serializable() proto.Message { return &m.Invoke }

// InvokeResult replies Invoke with the returned value.
type InvokeResult struct {
	pb.InvokeResult
}

// NewInvokeResult creates an InvokeResult.
func NewInvokeResult(v binding.Value) *InvokeResult {
	return &InvokeResult{InvokeResult: pb.InvokeResult{Value: ValueToPB(v)}}
}

// Result gets the returned value.
func (m *InvokeResult) Result() binding.Value {
	return ValueFromPB(m.Value)
}

// NewMessage implements Message.
func (m *InvokeResult) NewMessage() fx.Message { return &InvokeResult{} }

// TypeID implements SerializableMessage.
func (m *InvokeResult) TypeID() uint32 { return InvokeResultTypeID }

// Serializable implements SerializableMessage.
func (m *InvokeResult) Serializable() proto.Message { return &m.InvokeResult }

// MethodsQuery requests the method table.
type MethodsQuery struct {
	pb.MethodsQuery
}

// NewMessage implements Message.
func (m *MethodsQuery) NewMessage() fx.Message { return &MethodsQuery{} }

// TypeID implements SerializableMessage.
func (m *MethodsQuery) TypeID() uint32 { return MethodsQueryTypeID }

// Serializable implements SerializableMessage.
func (m *MethodsQuery) Serializable() proto.Message { return &m.MethodsQuery }

// MethodList replies MethodsQuery.
type MethodList struct {
	pb.MethodList
}

// NewMethodList creates a MethodList from the method table.
func NewMethodList(methods []binding.Method) *MethodList {
	m := &MethodList{}
	m.Methods = make([]*pb.MethodInfo, len(methods))
	for n := range methods {
		meth := &methods[n]
		m.Methods[n] = &pb.MethodInfo{
			Name:    meth.Name,
			Usage:   meth.Usage(),
			Doc:     meth.Doc,
			PreInit: meth.PreInit,
		}
	}
	return m
}

// NewMessage implements Message.
func (m *MethodList) NewMessage() fx.Message { return &MethodList{} }

// TypeID implements SerializableMessage.
func (m *MethodList) TypeID() uint32 { return MethodListTypeID }

// Serializable implements SerializableMessage.
func (m *MethodList) Serializable() proto.Message { return &m.MethodList }

// ValueToPB converts a host value to wire format.
func ValueToPB(v binding.Value) *pb.Value {
	switch v.Kind {
	case binding.KindFloat:
		return &pb.Value{Kind: pb.Value_FLOAT, Float: v.Float}
	case binding.KindList:
		items := make([]*pb.Value, len(v.List))
		for n, item := range v.List {
			items[n] = ValueToPB(item)
		}
		return &pb.Value{Kind: pb.Value_LIST, List: items}
	default:
		return &pb.Value{Kind: pb.Value_INT, Int: v.Int, Label: v.Label}
	}
}

// ValueFromPB converts a wire value to a host value, nil is int 0.
func ValueFromPB(v *pb.Value) binding.Value {
	if v == nil {
		return binding.Int(0)
	}
	switch v.Kind {
	case pb.Value_FLOAT:
		return binding.Float(v.Float)
	case pb.Value_LIST:
		if len(v.List) == 0 {
			return binding.List()
		}
		items := make([]binding.Value, len(v.List))
		for n, item := range v.List {
			items[n] = ValueFromPB(item)
		}
		return binding.List(items...)
	default:
		return binding.Enum(v.Int, v.Label)
	}
}
