package v1alpha1

import (
	"context"
	"math"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
	"github.com/KirkDiggler/rpg-stats/internal/orchestrators/owners"
)

// Request and response field names
const (
	FieldOwnerID       = "owner_id"
	FieldRuleset       = "ruleset"
	FieldLevel         = "level"
	FieldXP            = "xp"
	FieldXPToNextLevel = "xp_to_next_level"
	FieldStats         = "stats"
	FieldDiagnostics   = "diagnostics"
	FieldName          = "name"
	FieldBase          = "base"
	FieldValue         = "value"
	FieldMethod        = "method"
	FieldRaw           = "raw"
	FieldAmount        = "amount"
	FieldLeveledUp     = "leveled_up"
	FieldOwner         = "owner"
)

// HandlerConfig holds dependencies for the stats handler
type HandlerConfig struct {
	OwnerService owners.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.OwnerService == nil {
		return errors.InvalidArgument("owner service is required")
	}
	return nil
}

// Handler implements StatsServiceServer
type Handler struct {
	ownerService owners.Service
}

var _ StatsServiceServer = (*Handler)(nil)

// NewHandler creates a new stats handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		ownerService: cfg.OwnerService,
	}, nil
}

// CreateOwner creates an owner bound to a stored rule set
func (h *Handler) CreateOwner(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := newFields(req)
	input := &owners.CreateOwnerInput{
		Ruleset: f.str(FieldRuleset),
		Level:   f.optionalInt(FieldLevel),
	}
	if err := f.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.ownerService.CreateOwner(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return snapshotResponse(output.Owner, nil)
}

// AddStats adds stats to an owner and binds their rules
func (h *Handler) AddStats(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := newFields(req)
	input := &owners.AddStatsInput{
		OwnerID: f.str(FieldOwnerID),
		Stats:   f.stats(FieldStats),
	}
	if err := f.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.ownerService.AddStats(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return snapshotResponse(output.Owner, nil)
}

// UpdateStats recomputes every stat of an owner
func (h *Handler) UpdateStats(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := newFields(req)
	input := &owners.UpdateStatsInput{
		OwnerID: f.str(FieldOwnerID),
	}
	if err := f.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.ownerService.UpdateStats(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return snapshotResponse(output.Owner, nil)
}

// GetStat reads one stat value
func (h *Handler) GetStat(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := newFields(req)
	input := &owners.GetStatInput{
		OwnerID: f.str(FieldOwnerID),
		Name:    f.str(FieldName),
		Raw:     f.boolean(FieldRaw),
	}
	if err := f.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.ownerService.GetStat(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return toStruct(map[string]any{
		FieldName:  output.Name,
		FieldValue: output.Value,
	})
}

// SetLevel sets the level of an owner
func (h *Handler) SetLevel(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := newFields(req)
	input := &owners.SetLevelInput{
		OwnerID: f.str(FieldOwnerID),
		Level:   f.requiredInt(FieldLevel),
	}
	if err := f.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.ownerService.SetLevel(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return snapshotResponse(output.Owner, nil)
}

// AwardXP awards experience to an owner
func (h *Handler) AwardXP(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := newFields(req)
	input := &owners.AwardXPInput{
		OwnerID: f.str(FieldOwnerID),
		Amount:  f.requiredInt(FieldAmount),
	}
	if err := f.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	output, err := h.ownerService.AwardXP(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return snapshotResponse(output.Owner, map[string]any{
		FieldLeveledUp: output.LeveledUp,
	})
}

// DeleteOwner discards an owner
func (h *Handler) DeleteOwner(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	f := newFields(req)
	input := &owners.DeleteOwnerInput{
		OwnerID: f.str(FieldOwnerID),
	}
	if err := f.err(); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	if _, err := h.ownerService.DeleteOwner(ctx, input); err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &structpb.Struct{Fields: map[string]*structpb.Value{}}, nil
}

func snapshotResponse(snap *owners.OwnerSnapshot, extra map[string]any) (*structpb.Struct, error) {
	if snap == nil {
		return nil, errors.ToGRPCError(errors.Internal("owner service returned no owner"))
	}

	stats := make([]any, 0, len(snap.Stats))
	for _, st := range snap.Stats {
		stats = append(stats, map[string]any{
			FieldName:   st.Name,
			FieldBase:   st.Base,
			FieldValue:  st.Value,
			FieldMethod: st.Method,
		})
	}
	diags := make([]any, 0, len(snap.Diagnostics))
	for _, d := range snap.Diagnostics {
		diags = append(diags, d)
	}

	body := map[string]any{
		FieldOwnerID:       snap.OwnerID,
		FieldRuleset:       snap.Ruleset,
		FieldLevel:         snap.Level,
		FieldXP:            snap.XP,
		FieldXPToNextLevel: snap.XPToNextLevel,
		FieldStats:         stats,
		FieldDiagnostics:   diags,
	}
	if len(extra) == 0 {
		return toStruct(body)
	}

	resp := map[string]any{FieldOwner: body}
	for k, v := range extra {
		resp[k] = v
	}
	return toStruct(resp)
}

func toStruct(m map[string]any) (*structpb.Struct, error) {
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, errors.ToGRPCError(errors.WrapWithCode(err, errors.CodeInternal, "failed to encode response"))
	}
	return s, nil
}

// fields reads typed request fields and collects every problem it meets
type fields struct {
	values map[string]*structpb.Value
	vb     *errors.ValidationBuilder
}

func newFields(req *structpb.Struct) *fields {
	return &fields{
		values: req.GetFields(),
		vb:     errors.NewValidationBuilder(),
	}
}

func (f *fields) err() error {
	return f.vb.Build()
}

func (f *fields) str(key string) string {
	v, ok := f.values[key]
	if !ok {
		return ""
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		f.vb.InvalidField(key, "must be a string")
		return ""
	}
	return s.StringValue
}

func (f *fields) boolean(key string) bool {
	v, ok := f.values[key]
	if !ok {
		return false
	}
	b, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		f.vb.InvalidField(key, "must be a boolean")
		return false
	}
	return b.BoolValue
}

func (f *fields) requiredInt(key string) int {
	if _, ok := f.values[key]; !ok {
		f.vb.RequiredField(key)
		return 0
	}
	return f.optionalInt(key)
}

func (f *fields) optionalInt(key string) int {
	v, ok := f.values[key]
	if !ok {
		return 0
	}
	n, ok := toInt(v)
	if !ok {
		f.vb.InvalidField(key, "must be a whole number")
	}
	return n
}

func (f *fields) stats(key string) []owners.StatInput {
	v, ok := f.values[key]
	if !ok {
		return nil
	}
	list, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		f.vb.InvalidField(key, "must be a list")
		return nil
	}

	out := make([]owners.StatInput, 0, len(list.ListValue.GetValues()))
	for i, item := range list.ListValue.GetValues() {
		entry := item.GetStructValue()
		if entry == nil {
			f.vb.Fieldf(key, "entry %d must be an object", i)
			continue
		}
		name := entry.GetFields()[FieldName].GetStringValue()
		if name == "" {
			f.vb.Fieldf(key, "entry %d needs a name", i)
			continue
		}
		base, ok := toInt(entry.GetFields()[FieldBase])
		if !ok {
			f.vb.Fieldf(key, "entry %d (%s) needs a whole number base", i, name)
			continue
		}
		out = append(out, owners.StatInput{Name: name, Base: base})
	}
	return out
}

func toInt(v *structpb.Value) (int, bool) {
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, false
	}
	f := n.NumberValue
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
