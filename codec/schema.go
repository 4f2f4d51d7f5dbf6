package codec

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

const protoPackage = "yrp.duel"

type fieldType = descriptorpb.FieldDescriptorProto_Type

const (
	tBool    = descriptorpb.FieldDescriptorProto_TYPE_BOOL
	tInt32   = descriptorpb.FieldDescriptorProto_TYPE_INT32
	tUint32  = descriptorpb.FieldDescriptorProto_TYPE_UINT32
	tUint64  = descriptorpb.FieldDescriptorProto_TYPE_UINT64
	tMessage = descriptorpb.FieldDescriptorProto_TYPE_MESSAGE
	tEnum    = descriptorpb.FieldDescriptorProto_TYPE_ENUM
)

func field(name string, num int32, t fieldType) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(num),
		Type:   t.Enum(),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
	}
}

func ref(name string, num int32, t fieldType, typeName string) *descriptorpb.FieldDescriptorProto {
	f := field(name, num, t)
	f.TypeName = proto.String("." + protoPackage + "." + typeName)
	return f
}

func repeated(f *descriptorpb.FieldDescriptorProto) *descriptorpb.FieldDescriptorProto {
	f.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	return f
}

func message(name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	return &descriptorpb.DescriptorProto{Name: proto.String(name), Field: fields}
}

// optional adds proto3 explicit-presence fields, each with its synthetic oneof.
func optional(m *descriptorpb.DescriptorProto, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	for _, f := range fields {
		f.Proto3Optional = proto.Bool(true)
		f.OneofIndex = proto.Int32(int32(len(m.OneofDecl)))
		m.OneofDecl = append(m.OneofDecl, &descriptorpb.OneofDescriptorProto{Name: proto.String("_" + f.GetName())})
		m.Field = append(m.Field, f)
	}
	return m
}

// oneof puts fields into a real oneof. It must be declared before optional
// fields are added.
func oneof(m *descriptorpb.DescriptorProto, name string, fields ...*descriptorpb.FieldDescriptorProto) *descriptorpb.DescriptorProto {
	idx := proto.Int32(int32(len(m.OneofDecl)))
	m.OneofDecl = append(m.OneofDecl, &descriptorpb.OneofDescriptorProto{Name: proto.String(name)})
	for _, f := range fields {
		f.OneofIndex = idx
		m.Field = append(m.Field, f)
	}
	return m
}

func enum(name string, values ...string) *descriptorpb.EnumDescriptorProto {
	e := &descriptorpb.EnumDescriptorProto{Name: proto.String(name)}
	for i, v := range values {
		e.Value = append(e.Value, &descriptorpb.EnumValueDescriptorProto{
			Name:   proto.String(v),
			Number: proto.Int32(int32(i)),
		})
	}
	return e
}

func schemaProto() *descriptorpb.FileDescriptorProto {
	queryData := optional(message("QueryData"),
		field("owner", 1, tUint32),
		field("is_public", 2, tBool),
		field("is_hidden", 3, tBool),
		field("position", 4, tUint32),
		field("cover", 5, tUint32),
		field("status", 6, tUint32),
		field("code", 7, tUint32),
		field("alias", 8, tUint32),
		field("type", 9, tUint32),
		field("level", 10, tUint32),
		field("xyz_rank", 11, tUint32),
		field("attribute", 12, tUint32),
		field("race", 13, tUint64),
		field("base_atk", 14, tInt32),
		field("atk", 15, tInt32),
		field("base_def", 16, tInt32),
		field("def", 17, tInt32),
		field("pend_l_scale", 18, tUint32),
		field("pend_r_scale", 19, tUint32),
		field("link_rate", 20, tUint32),
		field("link_arrow", 21, tUint32),
	)
	queryData.Field = append(queryData.Field,
		repeated(ref("counters", 22, tMessage, "Counter")),
		ref("equipped", 23, tMessage, "Place"),
		repeated(ref("relations", 24, tMessage, "Place")),
	)

	event := oneof(message("Event"), "t",
		ref("start", 1, tMessage, "Start"),
		ref("new_turn", 2, tMessage, "NewTurn"),
		ref("new_phase", 3, tMessage, "NewPhase"),
		ref("draw", 4, tMessage, "Draw"),
		ref("moves", 5, tMessage, "Moves"),
		ref("lp_change", 6, tMessage, "LpChange"),
		ref("win", 7, tMessage, "Win"),
		ref("shuffle", 8, tMessage, "Shuffle"),
		ref("summon", 9, tMessage, "Summon"),
		ref("pos_change", 10, tMessage, "PosChange"),
	)

	return &descriptorpb.FileDescriptorProto{
		Name:    proto.String("yrp/duel.proto"),
		Package: proto.String(protoPackage),
		Syntax:  proto.String("proto3"),
		EnumType: []*descriptorpb.EnumDescriptorProto{
			enum("LpChangeType", "LP_CHANGE_UNSPECIFIED", "LP_CHANGE_DAMAGE", "LP_CHANGE_RECOVER",
				"LP_CHANGE_BECOME", "LP_CHANGE_PAY_COST"),
			enum("SummonType", "SUMMON_UNSPECIFIED", "SUMMON_NORMAL", "SUMMON_SPECIAL", "SUMMON_FLIP"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			message("Place",
				field("con", 1, tUint32),
				field("loc", 2, tUint32),
				field("seq", 3, tUint32),
				field("oseq", 4, tInt32),
			),
			message("Counter",
				field("type", 1, tUint32),
				field("count", 2, tUint32),
			),
			queryData,
			message("Query",
				ref("place", 1, tMessage, "Place"),
				ref("data", 2, tMessage, "QueryData"),
			),
			message("CardMove",
				field("code", 1, tUint32),
				ref("from", 2, tMessage, "Place"),
				ref("to", 3, tMessage, "Place"),
				field("position", 4, tUint32),
				field("reason", 5, tUint32),
			),
			message("StartPlayer",
				field("lp", 1, tUint32),
				field("deck_size", 2, tUint32),
				field("extra_size", 3, tUint32),
			),
			message("Start",
				field("player_type", 1, tUint32),
				repeated(ref("players", 2, tMessage, "StartPlayer")),
			),
			message("NewTurn", field("player", 1, tUint32)),
			message("NewPhase", field("phase", 1, tUint32)),
			message("Draw",
				field("player", 1, tUint32),
				repeated(ref("moves", 2, tMessage, "CardMove")),
			),
			message("Moves", repeated(ref("moves", 1, tMessage, "CardMove"))),
			message("LpChange",
				field("player", 1, tUint32),
				ref("type", 2, tEnum, "LpChangeType"),
				field("amount", 3, tUint32),
			),
			message("Win",
				field("player", 1, tUint32),
				field("reason", 2, tUint32),
				field("match_win_reason", 3, tUint32),
			),
			message("Shuffle",
				field("player", 1, tUint32),
				field("loc", 2, tUint32),
				repeated(field("codes", 3, tUint32)),
			),
			message("Summon",
				ref("type", 1, tEnum, "SummonType"),
				field("code", 2, tUint32),
				ref("place", 3, tMessage, "Place"),
				field("position", 4, tUint32),
			),
			message("PosChange",
				field("code", 1, tUint32),
				ref("place", 2, tMessage, "Place"),
				field("prev", 3, tUint32),
				field("cur", 4, tUint32),
			),
			event,
			message("Msg",
				ref("event", 1, tMessage, "Event"),
				repeated(ref("queries", 2, tMessage, "Query")),
			),
			message("Block",
				field("time_offset_ms", 1, tUint32),
				ref("msg", 2, tMessage, "Msg"),
			),
			message("Stream", repeated(ref("blocks", 1, tMessage, "Block"))),
			message("Replay", ref("stream", 1, tMessage, "Stream")),
		},
	}
}

// Schema is the descriptor of the messages written by the serializers.
var Schema = mustSchema()

func mustSchema() protoreflect.FileDescriptor {
	fd, err := protodesc.NewFile(schemaProto(), nil)
	if err != nil {
		panic(fmt.Sprintf("codec: invalid schema: %v", err))
	}
	return fd
}

func messageType(name protoreflect.Name) protoreflect.MessageDescriptor {
	md := Schema.Messages().ByName(name)
	if md == nil {
		panic("codec: no message " + string(name))
	}
	return md
}
