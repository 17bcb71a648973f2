package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/milk9111/fishtown/common"
	"github.com/milk9111/fishtown/ecs"
	"github.com/milk9111/fishtown/ecs/component"
	"github.com/milk9111/fishtown/prefabs"
)

// NewPlayer builds the player from the player prefab.
func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return 0, err
	}
	return BuildPlayer(w, spec)
}

// BuildPlayer creates the player entity. The starting animation is the one
// for the initial state.
func BuildPlayer(w *ecs.World, spec *prefabs.PlayerSpec) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: %w: nil spec", ErrInvalidPlayer)
	}
	if _, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		return 0, fmt.Errorf("player: %w: a player already exists", ErrInvalidPlayer)
	}
	configs, err := AnimationConfigs(spec.Animations)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	state, err := initialState(spec.InitialState)
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}
	speed := spec.MoveSpeed
	if speed == 0 {
		speed = common.DefaultMoveSpeed
	}
	if speed < 0 || spec.Money < 0 {
		return 0, fmt.Errorf("player: %w: move_speed %v money %v", ErrInvalidPlayer, speed, spec.Money)
	}

	player := &component.Player{State: state, MoveSpeed: speed}
	player.Money = spec.Money

	anim := &component.Animation{Configs: configs}
	anim.Active = state.SpriteIndex()
	anim.Frame = configs[anim.Active].First
	anim.Playing = true

	name := spec.Name
	if name == "" {
		name = "player"
	}
	return buildEntity(w, name,
		withComponent(component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		withComponent(component.PlayerComponent.Kind(), player),
		withComponent(component.AnimationComponent.Kind(), anim),
		withComponent(component.ZoneMembershipComponent.Kind(), &component.ZoneMembership{}),
		withTransform(spec.Transform.X, spec.Transform.Y),
		withShape(spec.Shape),
	)
}

func initialState(name string) (component.PlayerStateID, error) {
	if strings.TrimSpace(name) == "" {
		return component.PlayerWalk, nil
	}
	key := strings.ToLower(strings.TrimSpace(name))
	state, ok := component.ParsePlayerState(key)
	if !ok {
		return 0, fmt.Errorf("%w: unknown initial state %q%s", ErrInvalidPlayer, name, common.Suggest(key, component.PlayerStateNames()))
	}
	return state, nil
}

// AnimationConfigs turns named prefab animations into configs indexed by
// player state sprite index. Every state needs exactly one animation.
func AnimationConfigs(specs map[string]prefabs.AnimationFrameSpec) ([]component.AnimationConfig, error) {
	if len(specs) == 0 {
		return nil, fmt.Errorf("%w: no animations defined", component.ErrInvalidAnimation)
	}

	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	states := component.PlayerStates()
	configs := make([]component.AnimationConfig, len(states))
	seen := make([]bool, len(states))
	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		state, ok := component.ParsePlayerState(key)
		if !ok {
			return nil, fmt.Errorf("%w: no player state %q%s", component.ErrInvalidAnimation, name, common.Suggest(key, component.PlayerStateNames()))
		}
		if seen[state.SpriteIndex()] {
			return nil, fmt.Errorf("%w: state %q defined twice", component.ErrInvalidAnimation, key)
		}
		cfg, err := animationConfig(key, specs[name])
		if err != nil {
			return nil, err
		}
		configs[state.SpriteIndex()] = cfg
		seen[state.SpriteIndex()] = true
	}
	for _, state := range states {
		if !seen[state.SpriteIndex()] {
			return nil, fmt.Errorf("%w: missing animation for state %q", component.ErrInvalidAnimation, state)
		}
	}
	return configs, nil
}

func animationConfig(name string, spec prefabs.AnimationFrameSpec) (component.AnimationConfig, error) {
	cfg := component.AnimationConfig{
		Name:          name,
		First:         spec.First,
		Last:          spec.Last,
		FrameDuration: spec.FrameDuration,
	}
	switch strings.ToLower(strings.TrimSpace(spec.Mode)) {
	case "", "once":
		cfg.Mode = component.LoopOnce
	case "repeat", "repeating", "loop":
		cfg.Mode = component.LoopRepeating
	default:
		return cfg, fmt.Errorf("%w %q: unknown mode %q%s", component.ErrInvalidAnimation, name, spec.Mode,
			common.Suggest(spec.Mode, []string{"once", "repeating"}))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ReloadAnimations swaps the player's animation configs and restarts the
// animation of the current state.
func ReloadAnimations(w *ecs.World, specs map[string]prefabs.AnimationFrameSpec) error {
	configs, err := AnimationConfigs(specs)
	if err != nil {
		return fmt.Errorf("player: reload: %w", err)
	}
	e, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return nil
	}
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return nil
	}
	anim, ok := ecs.Get(w, e, component.AnimationComponent.Kind())
	if !ok {
		return nil
	}
	anim.Configs = configs
	return w.Raise(ecs.Event{Type: ecs.EventSwitchSprite, Entity: e, Index: player.State.SpriteIndex()})
}
