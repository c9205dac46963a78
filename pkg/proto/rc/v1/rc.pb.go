// Package v1 contains the protobuf messages of rc.proto.
package v1

import (
	"github.com/golang/protobuf/proto"
)

// Typed is the envelope of every packet.
type Typed struct {
	TypeId               uint32   `protobuf:"fixed32,1,opt,name=type_id,json=typeId,proto3" json:"type_id,omitempty"`
	Sequence             uint32   `protobuf:"varint,2,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Message              []byte   `protobuf:"bytes,3,opt,name=message,proto3" json:"message,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Typed) Reset()         { *m = Typed{} }
func (m *Typed) String() string { return proto.CompactTextString(m) }
func (*Typed) ProtoMessage()    {}

// CommandOK is the empty reply.
type CommandOK struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *CommandOK) Reset()         { *m = CommandOK{} }
func (m *CommandOK) String() string { return proto.CompactTextString(m) }
func (*CommandOK) ProtoMessage()    {}

// CommandErr is the error reply.
type CommandErr struct {
	Message              string   `protobuf:"bytes,1,opt,name=message,proto3" json:"message,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *CommandErr) Reset()         { *m = CommandErr{} }
func (m *CommandErr) String() string { return proto.CompactTextString(m) }
func (*CommandErr) ProtoMessage()    {}

// Value kinds.
const (
	Value_INT   int32 = 0
	Value_FLOAT int32 = 1
	Value_LIST  int32 = 2
	Value_TEXT  int32 = 3
)

// Value is a host value: int, float or list.
type Value struct {
	Kind                 int32    `protobuf:"varint,1,opt,name=kind,proto3" json:"kind,omitempty"`
	Int                  int64    `protobuf:"zigzag64,2,opt,name=int,proto3" json:"int,omitempty"`
	Float                float64  `protobuf:"fixed64,3,opt,name=float,proto3" json:"float,omitempty"`
	List                 []*Value `protobuf:"bytes,4,rep,name=list,proto3" json:"list,omitempty"`
	Label                string   `protobuf:"bytes,5,opt,name=label,proto3" json:"label,omitempty"`
	Text                 string   `protobuf:"bytes,6,opt,name=text,proto3" json:"text,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Value) Reset()         { *m = Value{} }
func (m *Value) String() string { return proto.CompactTextString(m) }
func (*Value) ProtoMessage()    {}

func (m *Value) GetList() []*Value {
	if m != nil {
		return m.List
	}
	return nil
}

func (m *Value) GetText() string {
	if m != nil {
		return m.Text
	}
	return ""
}

// Invoke calls a method by name.
type Invoke struct {
	Name                 string   `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Args                 []*Value `protobuf:"bytes,2,rep,name=args,proto3" json:"args,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Invoke) Reset()         { *m = Invoke{} }
func (m *Invoke) String() string { return proto.CompactTextString(m) }
func (*Invoke) ProtoMessage()    {}

func (m *Invoke) GetArgs() []*Value {
	if m != nil {
		return m.Args
	}
	return nil
}

// InvokeResult is the reply of Invoke.
type InvokeResult struct {
	Value                *Value   `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *InvokeResult) Reset()         { *m = InvokeResult{} }
func (m *InvokeResult) String() string { return proto.CompactTextString(m) }
func (*InvokeResult) ProtoMessage()    {}

func (m *InvokeResult) GetValue() *Value {
	if m != nil {
		return m.Value
	}
	return nil
}

// MethodsQuery requests the method table.
type MethodsQuery struct {
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *MethodsQuery) Reset()         { *m = MethodsQuery{} }
func (m *MethodsQuery) String() string { return proto.CompactTextString(m) }
func (*MethodsQuery) ProtoMessage()    {}

// MethodInfo describes a method.
type MethodInfo struct {
	Name                 string   `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Usage                string   `protobuf:"bytes,2,opt,name=usage,proto3" json:"usage,omitempty"`
	Doc                  string   `protobuf:"bytes,3,opt,name=doc,proto3" json:"doc,omitempty"`
	PreInit              bool     `protobuf:"varint,4,opt,name=pre_init,json=preInit,proto3" json:"pre_init,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *MethodInfo) Reset()         { *m = MethodInfo{} }
func (m *MethodInfo) String() string { return proto.CompactTextString(m) }
func (*MethodInfo) ProtoMessage()    {}

// MethodList is the reply of MethodsQuery.
type MethodList struct {
	Methods              []*MethodInfo `protobuf:"bytes,1,rep,name=methods,proto3" json:"methods,omitempty"`
	XXX_NoUnkeyedLiteral struct{}      `json:"-"`
	XXX_unrecognized     []byte        `json:"-"`
	XXX_sizecache        int32         `json:"-"`
}

func (m *MethodList) Reset()         { *m = MethodList{} }
func (m *MethodList) String() string { return proto.CompactTextString(m) }
func (*MethodList) ProtoMessage()    {}

func (m *MethodList) GetMethods() []*MethodInfo {
	if m != nil {
		return m.Methods
	}
	return nil
}

func init() {
	proto.RegisterType((*Typed)(nil), "rc.v1.Typed")
	proto.RegisterType((*CommandOK)(nil), "rc.v1.CommandOK")
	proto.RegisterType((*CommandErr)(nil), "rc.v1.CommandErr")
	proto.RegisterType((*Value)(nil), "rc.v1.Value")
	proto.RegisterType((*Invoke)(nil), "rc.v1.Invoke")
	proto.RegisterType((*InvokeResult)(nil), "rc.v1.InvokeResult")
	proto.RegisterType((*MethodsQuery)(nil), "rc.v1.MethodsQuery")
	proto.RegisterType((*MethodInfo)(nil), "rc.v1.MethodInfo")
	proto.RegisterType((*MethodList)(nil), "rc.v1.MethodList")
}
