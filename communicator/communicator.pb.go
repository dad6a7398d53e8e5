// Copyright 2023 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.30.0
// 	protoc        (unknown)
// source: communicator.proto

package communicator

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	emptypb "google.golang.org/protobuf/types/known/emptypb"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type InitRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Rank      int64 `protobuf:"varint,1,opt,name=rank,proto3" json:"rank,omitempty"`
	WorldSize int64 `protobuf:"varint,2,opt,name=world_size,json=worldSize,proto3" json:"world_size,omitempty"`
}

func (x *InitRequest) Reset() {
	*x = InitRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_communicator_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *InitRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*InitRequest) ProtoMessage() {}

func (x *InitRequest) ProtoReflect() protoreflect.Message {
	mi := &file_communicator_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use InitRequest.ProtoReflect.Descriptor instead.
func (*InitRequest) Descriptor() ([]byte, []int) {
	return file_communicator_proto_rawDescGZIP(), []int{0}
}

func (x *InitRequest) GetRank() int64 {
	if x != nil {
		return x.Rank
	}
	return 0
}

func (x *InitRequest) GetWorldSize() int64 {
	if x != nil {
		return x.WorldSize
	}
	return 0
}

type SplitRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Comm  int64  `protobuf:"varint,1,opt,name=comm,proto3" json:"comm,omitempty"`
	Rank  int64  `protobuf:"varint,2,opt,name=rank,proto3" json:"rank,omitempty"`
	Seq   uint64 `protobuf:"varint,3,opt,name=seq,proto3" json:"seq,omitempty"`
	Color int64  `protobuf:"varint,4,opt,name=color,proto3" json:"color,omitempty"`
	Key   int64  `protobuf:"varint,5,opt,name=key,proto3" json:"key,omitempty"`
}

func (x *SplitRequest) Reset() {
	*x = SplitRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_communicator_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SplitRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SplitRequest) ProtoMessage() {}

func (x *SplitRequest) ProtoReflect() protoreflect.Message {
	mi := &file_communicator_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SplitRequest.ProtoReflect.Descriptor instead.
func (*SplitRequest) Descriptor() ([]byte, []int) {
	return file_communicator_proto_rawDescGZIP(), []int{1}
}

func (x *SplitRequest) GetComm() int64 {
	if x != nil {
		return x.Comm
	}
	return 0
}

func (x *SplitRequest) GetRank() int64 {
	if x != nil {
		return x.Rank
	}
	return 0
}

func (x *SplitRequest) GetSeq() uint64 {
	if x != nil {
		return x.Seq
	}
	return 0
}

func (x *SplitRequest) GetColor() int64 {
	if x != nil {
		return x.Color
	}
	return 0
}

func (x *SplitRequest) GetKey() int64 {
	if x != nil {
		return x.Key
	}
	return 0
}

type SplitResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	// comm identifies the sub-communicator the calling rank joined; ranks with
	// the same color observe the same identifier.
	Comm int64 `protobuf:"varint,1,opt,name=comm,proto3" json:"comm,omitempty"`
	Rank int64 `protobuf:"varint,2,opt,name=rank,proto3" json:"rank,omitempty"`
	Size int64 `protobuf:"varint,3,opt,name=size,proto3" json:"size,omitempty"`
}

func (x *SplitResponse) Reset() {
	*x = SplitResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_communicator_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *SplitResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SplitResponse) ProtoMessage() {}

func (x *SplitResponse) ProtoReflect() protoreflect.Message {
	mi := &file_communicator_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SplitResponse.ProtoReflect.Descriptor instead.
func (*SplitResponse) Descriptor() ([]byte, []int) {
	return file_communicator_proto_rawDescGZIP(), []int{2}
}

func (x *SplitResponse) GetComm() int64 {
	if x != nil {
		return x.Comm
	}
	return 0
}

func (x *SplitResponse) GetRank() int64 {
	if x != nil {
		return x.Rank
	}
	return 0
}

func (x *SplitResponse) GetSize() int64 {
	if x != nil {
		return x.Size
	}
	return 0
}

type AllReduceRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Comm int64  `protobuf:"varint,1,opt,name=comm,proto3" json:"comm,omitempty"`
	Rank int64  `protobuf:"varint,2,opt,name=rank,proto3" json:"rank,omitempty"`
	Seq  uint64 `protobuf:"varint,3,opt,name=seq,proto3" json:"seq,omitempty"`
	// op names the reduction operator; names unknown to the coordinator are
	// rejected.
	Op    string `protobuf:"bytes,4,opt,name=op,proto3" json:"op,omitempty"`
	Dtype int32  `protobuf:"varint,5,opt,name=dtype,proto3" json:"dtype,omitempty"`
	Count int64  `protobuf:"varint,6,opt,name=count,proto3" json:"count,omitempty"`
	// data holds count elements of dtype in little-endian byte order.
	Data []byte `protobuf:"bytes,7,opt,name=data,proto3" json:"data,omitempty"`
}

func (x *AllReduceRequest) Reset() {
	*x = AllReduceRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_communicator_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AllReduceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AllReduceRequest) ProtoMessage() {}

func (x *AllReduceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_communicator_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AllReduceRequest.ProtoReflect.Descriptor instead.
func (*AllReduceRequest) Descriptor() ([]byte, []int) {
	return file_communicator_proto_rawDescGZIP(), []int{3}
}

func (x *AllReduceRequest) GetComm() int64 {
	if x != nil {
		return x.Comm
	}
	return 0
}

func (x *AllReduceRequest) GetRank() int64 {
	if x != nil {
		return x.Rank
	}
	return 0
}

func (x *AllReduceRequest) GetSeq() uint64 {
	if x != nil {
		return x.Seq
	}
	return 0
}

func (x *AllReduceRequest) GetOp() string {
	if x != nil {
		return x.Op
	}
	return ""
}

func (x *AllReduceRequest) GetDtype() int32 {
	if x != nil {
		return x.Dtype
	}
	return 0
}

func (x *AllReduceRequest) GetCount() int64 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *AllReduceRequest) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

type AllReduceResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (x *AllReduceResponse) Reset() {
	*x = AllReduceResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_communicator_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *AllReduceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*AllReduceResponse) ProtoMessage() {}

func (x *AllReduceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_communicator_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use AllReduceResponse.ProtoReflect.Descriptor instead.
func (*AllReduceResponse) Descriptor() ([]byte, []int) {
	return file_communicator_proto_rawDescGZIP(), []int{4}
}

func (x *AllReduceResponse) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

type BcastRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Comm  int64  `protobuf:"varint,1,opt,name=comm,proto3" json:"comm,omitempty"`
	Rank  int64  `protobuf:"varint,2,opt,name=rank,proto3" json:"rank,omitempty"`
	Seq   uint64 `protobuf:"varint,3,opt,name=seq,proto3" json:"seq,omitempty"`
	Root  int64  `protobuf:"varint,4,opt,name=root,proto3" json:"root,omitempty"`
	Dtype int32  `protobuf:"varint,5,opt,name=dtype,proto3" json:"dtype,omitempty"`
	Count int64  `protobuf:"varint,6,opt,name=count,proto3" json:"count,omitempty"`
	Data  []byte `protobuf:"bytes,7,opt,name=data,proto3" json:"data,omitempty"`
}

func (x *BcastRequest) Reset() {
	*x = BcastRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_communicator_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *BcastRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BcastRequest) ProtoMessage() {}

func (x *BcastRequest) ProtoReflect() protoreflect.Message {
	mi := &file_communicator_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BcastRequest.ProtoReflect.Descriptor instead.
func (*BcastRequest) Descriptor() ([]byte, []int) {
	return file_communicator_proto_rawDescGZIP(), []int{5}
}

func (x *BcastRequest) GetComm() int64 {
	if x != nil {
		return x.Comm
	}
	return 0
}

func (x *BcastRequest) GetRank() int64 {
	if x != nil {
		return x.Rank
	}
	return 0
}

func (x *BcastRequest) GetSeq() uint64 {
	if x != nil {
		return x.Seq
	}
	return 0
}

func (x *BcastRequest) GetRoot() int64 {
	if x != nil {
		return x.Root
	}
	return 0
}

func (x *BcastRequest) GetDtype() int32 {
	if x != nil {
		return x.Dtype
	}
	return 0
}

func (x *BcastRequest) GetCount() int64 {
	if x != nil {
		return x.Count
	}
	return 0
}

func (x *BcastRequest) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

type BcastResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Data []byte `protobuf:"bytes,1,opt,name=data,proto3" json:"data,omitempty"`
}

func (x *BcastResponse) Reset() {
	*x = BcastResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_communicator_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *BcastResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BcastResponse) ProtoMessage() {}

func (x *BcastResponse) ProtoReflect() protoreflect.Message {
	mi := &file_communicator_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BcastResponse.ProtoReflect.Descriptor instead.
func (*BcastResponse) Descriptor() ([]byte, []int) {
	return file_communicator_proto_rawDescGZIP(), []int{6}
}

func (x *BcastResponse) GetData() []byte {
	if x != nil {
		return x.Data
	}
	return nil
}

var File_communicator_proto protoreflect.FileDescriptor

var file_communicator_proto_rawDesc = []byte{
	0x0a, 0x12, 0x63, 0x6f, 0x6d, 0x6d, 0x75, 0x6e, 0x69, 0x63, 0x61, 0x74, 0x6f, 0x72, 0x2e, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x12, 0x06, 0x6b, 0x61, 0x69, 0x72, 0x6f, 0x73, 0x1a, 0x1b, 0x67, 0x6f,
	0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2f, 0x65, 0x6d,
	0x70, 0x74, 0x79, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x22, 0x40, 0x0a, 0x0b, 0x49, 0x6e, 0x69,
	0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x12, 0x0a, 0x04, 0x72, 0x61, 0x6e, 0x6b,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x04, 0x72, 0x61, 0x6e, 0x6b, 0x12, 0x1d, 0x0a, 0x0a,
	0x77, 0x6f, 0x72, 0x6c, 0x64, 0x5f, 0x73, 0x69, 0x7a, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x09, 0x77, 0x6f, 0x72, 0x6c, 0x64, 0x53, 0x69, 0x7a, 0x65, 0x22, 0x70, 0x0a, 0x0c, 0x53,
	0x70, 0x6c, 0x69, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x12, 0x0a, 0x04, 0x63,
	0x6f, 0x6d, 0x6d, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x04, 0x63, 0x6f, 0x6d, 0x6d, 0x12,
	0x12, 0x0a, 0x04, 0x72, 0x61, 0x6e, 0x6b, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x04, 0x72,
	0x61, 0x6e, 0x6b, 0x12, 0x10, 0x0a, 0x03, 0x73, 0x65, 0x71, 0x18, 0x03, 0x20, 0x01, 0x28, 0x04,
	0x52, 0x03, 0x73, 0x65, 0x71, 0x12, 0x14, 0x0a, 0x05, 0x63, 0x6f, 0x6c, 0x6f, 0x72, 0x18, 0x04,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x05, 0x63, 0x6f, 0x6c, 0x6f, 0x72, 0x12, 0x10, 0x0a, 0x03, 0x6b,
	0x65, 0x79, 0x18, 0x05, 0x20, 0x01, 0x28, 0x03, 0x52, 0x03, 0x6b, 0x65, 0x79, 0x22, 0x4b, 0x0a,
	0x0d, 0x53, 0x70, 0x6c, 0x69, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x12,
	0x0a, 0x04, 0x63, 0x6f, 0x6d, 0x6d, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x04, 0x63, 0x6f,
	0x6d, 0x6d, 0x12, 0x12, 0x0a, 0x04, 0x72, 0x61, 0x6e, 0x6b, 0x18, 0x02, 0x20, 0x01, 0x28, 0x03,
	0x52, 0x04, 0x72, 0x61, 0x6e, 0x6b, 0x12, 0x12, 0x0a, 0x04, 0x73, 0x69, 0x7a, 0x65, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x03, 0x52, 0x04, 0x73, 0x69, 0x7a, 0x65, 0x22, 0x9c, 0x01, 0x0a, 0x10, 0x41,
	0x6c, 0x6c, 0x52, 0x65, 0x64, 0x75, 0x63, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12,
	0x12, 0x0a, 0x04, 0x63, 0x6f, 0x6d, 0x6d, 0x18, 0x01, 0x20, 0x01, 0x28, 0x03, 0x52, 0x04, 0x63,
	0x6f, 0x6d, 0x6d, 0x12, 0x12, 0x0a, 0x04, 0x72, 0x61, 0x6e, 0x6b, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x03, 0x52, 0x04, 0x72, 0x61, 0x6e, 0x6b, 0x12, 0x10, 0x0a, 0x03, 0x73, 0x65, 0x71, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x04, 0x52, 0x03, 0x73, 0x65, 0x71, 0x12, 0x0e, 0x0a, 0x02, 0x6f, 0x70, 0x18,
	0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x02, 0x6f, 0x70, 0x12, 0x14, 0x0a, 0x05, 0x64, 0x74, 0x79,
	0x70, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x05, 0x52, 0x05, 0x64, 0x74, 0x79, 0x70, 0x65, 0x12,
	0x14, 0x0a, 0x05, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x06, 0x20, 0x01, 0x28, 0x03, 0x52, 0x05,
	0x63, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x12, 0x0a, 0x04, 0x64, 0x61, 0x74, 0x61, 0x18, 0x07, 0x20,
	0x01, 0x28, 0x0c, 0x52, 0x04, 0x64, 0x61, 0x74, 0x61, 0x22, 0x27, 0x0a, 0x11, 0x41, 0x6c, 0x6c,
	0x52, 0x65, 0x64, 0x75, 0x63, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x12,
	0x0a, 0x04, 0x64, 0x61, 0x74, 0x61, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0c, 0x52, 0x04, 0x64, 0x61,
	0x74, 0x61, 0x22, 0x9c, 0x01, 0x0a, 0x0c, 0x42, 0x63, 0x61, 0x73, 0x74, 0x52, 0x65, 0x71, 0x75,
	0x65, 0x73, 0x74, 0x12, 0x12, 0x0a, 0x04, 0x63, 0x6f, 0x6d, 0x6d, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x03, 0x52, 0x04, 0x63, 0x6f, 0x6d, 0x6d, 0x12, 0x12, 0x0a, 0x04, 0x72, 0x61, 0x6e, 0x6b, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x03, 0x52, 0x04, 0x72, 0x61, 0x6e, 0x6b, 0x12, 0x10, 0x0a, 0x03, 0x73,
	0x65, 0x71, 0x18, 0x03, 0x20, 0x01, 0x28, 0x04, 0x52, 0x03, 0x73, 0x65, 0x71, 0x12, 0x12, 0x0a,
	0x04, 0x72, 0x6f, 0x6f, 0x74, 0x18, 0x04, 0x20, 0x01, 0x28, 0x03, 0x52, 0x04, 0x72, 0x6f, 0x6f,
	0x74, 0x12, 0x14, 0x0a, 0x05, 0x64, 0x74, 0x79, 0x70, 0x65, 0x18, 0x05, 0x20, 0x01, 0x28, 0x05,
	0x52, 0x05, 0x64, 0x74, 0x79, 0x70, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x63, 0x6f, 0x75, 0x6e, 0x74,
	0x18, 0x06, 0x20, 0x01, 0x28, 0x03, 0x52, 0x05, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x12, 0x12, 0x0a,
	0x04, 0x64, 0x61, 0x74, 0x61, 0x18, 0x07, 0x20, 0x01, 0x28, 0x0c, 0x52, 0x04, 0x64, 0x61, 0x74,
	0x61, 0x22, 0x23, 0x0a, 0x0d, 0x42, 0x63, 0x61, 0x73, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x12, 0x0a, 0x04, 0x64, 0x61, 0x74, 0x61, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0c,
	0x52, 0x04, 0x64, 0x61, 0x74, 0x61, 0x32, 0xb7, 0x02, 0x0a, 0x0c, 0x43, 0x6f, 0x6d, 0x6d, 0x75,
	0x6e, 0x69, 0x63, 0x61, 0x74, 0x6f, 0x72, 0x12, 0x35, 0x0a, 0x04, 0x49, 0x6e, 0x69, 0x74, 0x12,
	0x13, 0x2e, 0x6b, 0x61, 0x69, 0x72, 0x6f, 0x73, 0x2e, 0x49, 0x6e, 0x69, 0x74, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x16, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72,
	0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x45, 0x6d, 0x70, 0x74, 0x79, 0x22, 0x00, 0x12, 0x36,
	0x0a, 0x05, 0x53, 0x70, 0x6c, 0x69, 0x74, 0x12, 0x14, 0x2e, 0x6b, 0x61, 0x69, 0x72, 0x6f, 0x73,
	0x2e, 0x53, 0x70, 0x6c, 0x69, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x15, 0x2e,
	0x6b, 0x61, 0x69, 0x72, 0x6f, 0x73, 0x2e, 0x53, 0x70, 0x6c, 0x69, 0x74, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x22, 0x00, 0x12, 0x42, 0x0a, 0x09, 0x41, 0x6c, 0x6c, 0x52, 0x65, 0x64,
	0x75, 0x63, 0x65, 0x12, 0x18, 0x2e, 0x6b, 0x61, 0x69, 0x72, 0x6f, 0x73, 0x2e, 0x41, 0x6c, 0x6c,
	0x52, 0x65, 0x64, 0x75, 0x63, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x19, 0x2e,
	0x6b, 0x61, 0x69, 0x72, 0x6f, 0x73, 0x2e, 0x41, 0x6c, 0x6c, 0x52, 0x65, 0x64, 0x75, 0x63, 0x65,
	0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x22, 0x00, 0x12, 0x36, 0x0a, 0x05, 0x42, 0x63,
	0x61, 0x73, 0x74, 0x12, 0x14, 0x2e, 0x6b, 0x61, 0x69, 0x72, 0x6f, 0x73, 0x2e, 0x42, 0x63, 0x61,
	0x73, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x15, 0x2e, 0x6b, 0x61, 0x69, 0x72,
	0x6f, 0x73, 0x2e, 0x42, 0x63, 0x61, 0x73, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x22, 0x00, 0x12, 0x3c, 0x0a, 0x08, 0x46, 0x69, 0x6e, 0x61, 0x6c, 0x69, 0x7a, 0x65, 0x12, 0x16,
	0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66,
	0x2e, 0x45, 0x6d, 0x70, 0x74, 0x79, 0x1a, 0x16, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66, 0x2e, 0x45, 0x6d, 0x70, 0x74, 0x79, 0x22, 0x00,
	0x42, 0x25, 0x5a, 0x23, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x39,
	0x72, 0x75, 0x6d, 0x2f, 0x6b, 0x61, 0x69, 0x72, 0x6f, 0x73, 0x2f, 0x63, 0x6f, 0x6d, 0x6d, 0x75,
	0x6e, 0x69, 0x63, 0x61, 0x74, 0x6f, 0x72, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_communicator_proto_rawDescOnce sync.Once
	file_communicator_proto_rawDescData = file_communicator_proto_rawDesc
)

func file_communicator_proto_rawDescGZIP() []byte {
	file_communicator_proto_rawDescOnce.Do(func() {
		file_communicator_proto_rawDescData = protoimpl.X.CompressGZIP(file_communicator_proto_rawDescData)
	})
	return file_communicator_proto_rawDescData
}

var file_communicator_proto_msgTypes = make([]protoimpl.MessageInfo, 7)
var file_communicator_proto_goTypes = []interface{}{
	(*InitRequest)(nil),       // 0: kairos.InitRequest
	(*SplitRequest)(nil),      // 1: kairos.SplitRequest
	(*SplitResponse)(nil),     // 2: kairos.SplitResponse
	(*AllReduceRequest)(nil),  // 3: kairos.AllReduceRequest
	(*AllReduceResponse)(nil), // 4: kairos.AllReduceResponse
	(*BcastRequest)(nil),      // 5: kairos.BcastRequest
	(*BcastResponse)(nil),     // 6: kairos.BcastResponse
	(*emptypb.Empty)(nil),     // 7: google.protobuf.Empty
}
var file_communicator_proto_depIdxs = []int32{
	0, // 0: kairos.Communicator.Init:input_type -> kairos.InitRequest
	1, // 1: kairos.Communicator.Split:input_type -> kairos.SplitRequest
	3, // 2: kairos.Communicator.AllReduce:input_type -> kairos.AllReduceRequest
	5, // 3: kairos.Communicator.Bcast:input_type -> kairos.BcastRequest
	7, // 4: kairos.Communicator.Finalize:input_type -> google.protobuf.Empty
	7, // 5: kairos.Communicator.Init:output_type -> google.protobuf.Empty
	2, // 6: kairos.Communicator.Split:output_type -> kairos.SplitResponse
	4, // 7: kairos.Communicator.AllReduce:output_type -> kairos.AllReduceResponse
	6, // 8: kairos.Communicator.Bcast:output_type -> kairos.BcastResponse
	7, // 9: kairos.Communicator.Finalize:output_type -> google.protobuf.Empty
	5, // [5:10] is the sub-list for method output_type
	0, // [0:5] is the sub-list for method input_type
	0, // [0:0] is the sub-list for extension type_name
	0, // [0:0] is the sub-list for extension extendee
	0, // [0:0] is the sub-list for field type_name
}

func init() { file_communicator_proto_init() }
func file_communicator_proto_init() {
	if File_communicator_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_communicator_proto_msgTypes[0].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*InitRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_communicator_proto_msgTypes[1].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*SplitRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_communicator_proto_msgTypes[2].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*SplitResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_communicator_proto_msgTypes[3].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*AllReduceRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_communicator_proto_msgTypes[4].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*AllReduceResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_communicator_proto_msgTypes[5].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*BcastRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_communicator_proto_msgTypes[6].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*BcastResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_communicator_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   7,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_communicator_proto_goTypes,
		DependencyIndexes: file_communicator_proto_depIdxs,
		MessageInfos:      file_communicator_proto_msgTypes,
	}.Build()
	File_communicator_proto = out.File
	file_communicator_proto_rawDesc = nil
	file_communicator_proto_goTypes = nil
	file_communicator_proto_depIdxs = nil
}
