package scene

import (
	"os"
	"path/filepath"

	"holiday-scene/internal/fpscam"
	"holiday-scene/internal/layout"
	"holiday-scene/internal/placement"
	"holiday-scene/internal/props"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	groundExtent   = 120
	gridExtent     = 50
	gridMinorStep  = 1
	gridMajorStep  = 10
	gridMinorAlpha = 50
	gridMajorAlpha = 120
	skyboxScale    = 1000
	eyeHeight      = 1.7
	cameraFovy     = 60
)

// snowColor is the ground plane tint (slightly blue so the skybox doesn't wash it out).
var snowColor = rl.NewColor(235, 240, 248, 255)

// lightDir is the direction to the key light, shared by every lit prop.
var lightDir = [3]float32{0.4, 1, 0.6}

// skyboxPaths are tried in order so the skybox is found whether run from repo
// root or cmd/scene. Cubemap or equirectangular panorama; optional.
var skyboxPaths = []string{
	"assets/skybox/skybox.png",
	"assets/skybox/skybox.jpg",
	"../../assets/skybox/skybox.png",
	"../../assets/skybox/skybox.jpg",
}

// Scene composes the holiday world: gingerbread house and wagon at fixed spots,
// candy scattered by the placement generator, a snow ground plane, and an
// optional skybox. It owns the rl.Camera3D; ApplyPose copies the first-person
// pose into it each frame.
type Scene struct {
	Camera      rl.Camera3D
	GridVisible bool

	lay       layout.Layout
	reg       *props.Registry
	fixed     []props.Instance // house and wagon
	scattered []props.Instance // candy, rebuilt by Rescatter

	// Skybox: drawn first in 3D mode, GPU load deferred until first Draw
	// (after the window/GL context exists).
	skyboxTex       rl.Texture2D
	skyboxMesh      rl.Mesh
	skyboxMtl       rl.Material
	skyboxLoaded    bool
	skyboxPending   bool
	skyboxPath      string
	skyboxEquirect  bool // true = panorama (2D texture + shader), false = cubemap
	skyboxCamPosLoc int32
	skyboxTexLoc    int32
}

// New returns a scene dressed from the given layout, with candy already
// scattered using the layout's seed (0 = fresh layout this run). The camera
// starts at eye height south of the house, looking at it.
func New(lay layout.Layout) *Scene {
	s := &Scene{
		lay: lay,
		reg: props.NewRegistry(),
		fixed: []props.Instance{
			{Category: props.CategoryHouse, Position: [3]float32{0, 0, 0}},
			{Category: props.CategoryWagon, Position: [3]float32{15, 0, 5}, RotY: 0.6},
		},
	}
	s.Camera.Position = rl.NewVector3(0, eyeHeight, 20)
	s.Camera.Target = rl.NewVector3(0, eyeHeight, 0)
	s.Camera.Up = rl.NewVector3(0, 1, 0)
	s.Camera.Fovy = cameraFovy
	s.Camera.Projection = rl.CameraPerspective
	s.Rescatter(lay.Seed)
	s.loadSkybox()
	return s
}

// SetGridVisible sets whether the debug grid is drawn over the snow.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// SetCounts replaces every category's instance count (used by the scatter
// command). The next Rescatter picks it up.
func (s *Scene) SetCounts(perCategory int) {
	if perCategory < 0 {
		return
	}
	for i := range s.lay.Props {
		s.lay.Props[i].Count = perCategory
	}
}

// Total returns the number of scattered candy instances.
func (s *Scene) Total() int {
	return len(s.scattered)
}

// Layout returns the scene's current layout, including any count changes made
// through SetCounts (so the scatter command can persist it).
func (s *Scene) Layout() layout.Layout {
	return s.lay
}

// Rescatter throws away the current candy layout and generates a new one.
// The exclusion zones come from the layout file; every accepted spot keeps the
// configured spacing from its predecessors. Seed 0 gives a new layout each call.
func (s *Scene) Rescatter(seed int64) {
	zones := make([]placement.Zone, 0, len(s.lay.Zones))
	for _, z := range s.lay.Zones {
		zones = append(zones, placement.Zone{CenterX: z.X, CenterZ: z.Z, HalfW: z.HalfW, HalfD: z.HalfD})
	}
	spots := placement.Generate(placement.Options{
		Count:      s.lay.Total(),
		HalfExtent: s.lay.HalfExtent,
		MinSpacing: s.lay.Spacing,
		Zones:      zones,
		Seed:       seed,
	})

	// Spots are partitioned across categories in layout order; each category
	// layers its fixed height, scale, and tilt onto the instance's random spin.
	insts := make([]props.Instance, 0, len(spots))
	i := 0
	for _, p := range s.lay.Props {
		for k := 0; k < p.Count && i < len(spots); k++ {
			sp := spots[i]
			i++
			insts = append(insts, props.Instance{
				Category: p.Name,
				Position: [3]float32{sp.X, p.Y, sp.Z},
				Scale:    p.Scale,
				RotX:     p.TiltX,
				RotY:     sp.RotationY,
				RotZ:     p.TiltZ,
			})
		}
	}
	s.scattered = insts
}

// ApplyPose copies the first-person pose into the raylib camera: position as
// given, target one unit along the look direction.
func (s *Scene) ApplyPose(pose fpscam.Pose) {
	f := pose.Forward()
	s.Camera.Position = rl.NewVector3(pose.Position[0], pose.Position[1], pose.Position[2])
	s.Camera.Target = rl.NewVector3(pose.Position[0]+f[0], pose.Position[1]+f[1], pose.Position[2]+f[2])
}

// Draw renders the 3D scene. Call between BeginDrawing and the 2D overlays.
func (s *Scene) Draw() {
	s.ensureSkyboxLoaded()
	rl.BeginMode3D(s.Camera)
	if s.skyboxLoaded {
		s.drawSkybox()
	}
	rl.DrawPlane(rl.NewVector3(0, 0, 0), rl.NewVector2(groundExtent, groundExtent), snowColor)
	s.reg.SetView([3]float32{s.Camera.Position.X, s.Camera.Position.Y, s.Camera.Position.Z}, lightDir)
	for _, inst := range s.fixed {
		s.reg.Draw(inst)
	}
	for _, inst := range s.scattered {
		s.reg.Draw(inst)
	}
	if s.GridVisible {
		drawDebugGrid()
	}
	rl.EndMode3D()
}

// equirectAspectMin/Max: width/height ratio for an equirectangular panorama
// (typically 2:1); anything else is treated as a cubemap layout.
const equirectAspectMin = 1.8
const equirectAspectMax = 2.2

// loadSkybox finds the skybox file and decides cubemap vs equirect. GPU loading
// is deferred to ensureSkyboxLoaded (called from Draw) so it runs after the
// window exists. No file means no skybox; the scene still renders.
func (s *Scene) loadSkybox() {
	var path string
	for _, p := range skyboxPaths {
		cleaned := filepath.Clean(p)
		if _, err := os.Stat(cleaned); err == nil {
			path = cleaned
			break
		}
	}
	if path == "" {
		return
	}
	img := rl.LoadImage(path)
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return
	}
	aspect := float32(img.Width) / float32(img.Height)
	s.skyboxEquirect = aspect >= equirectAspectMin && aspect <= equirectAspectMax
	rl.UnloadImage(img)

	s.skyboxPath = path
	s.skyboxPending = true
}

// ensureSkyboxLoaded runs the first time Draw sees a pending skybox; it loads
// the texture, mesh, material, and (for panoramas) the shader after the GL
// context exists.
func (s *Scene) ensureSkyboxLoaded() {
	if !s.skyboxPending || s.skyboxPath == "" {
		return
	}
	path := s.skyboxPath
	s.skyboxPending = false
	s.skyboxPath = ""

	if !s.skyboxEquirect {
		img := rl.LoadImage(path)
		if img == nil || img.Width <= 0 || img.Height <= 0 {
			return
		}
		s.skyboxTex = rl.LoadTextureCubemap(img, rl.CubemapLayoutAutoDetect)
		rl.UnloadImage(img)
		if !rl.IsTextureValid(s.skyboxTex) {
			return
		}
		s.skyboxMesh = rl.GenMeshCube(1, 1, 1)
		s.skyboxMtl = rl.LoadMaterialDefault()
		rl.SetMaterialTexture(&s.skyboxMtl, rl.MapCubemap, s.skyboxTex)
		s.skyboxLoaded = true
		return
	}

	s.skyboxTex = rl.LoadTexture(path)
	if !rl.IsTextureValid(s.skyboxTex) {
		return
	}
	shader := rl.LoadShaderFromMemory(equirectVS, equirectFS)
	if !rl.IsShaderValid(shader) {
		rl.UnloadTexture(s.skyboxTex)
		return
	}
	s.skyboxMesh = rl.GenMeshCube(1, 1, 1)
	s.skyboxMtl = rl.LoadMaterialDefault()
	s.skyboxMtl.Shader = shader
	s.skyboxCamPosLoc = rl.GetShaderLocation(shader, "cameraPosition")
	s.skyboxTexLoc = rl.GetShaderLocation(shader, "skybox")
	s.skyboxLoaded = true
}

// Equirectangular skybox shader: samples a 2D panorama by view direction.
const (
	equirectVS = `#version 330
in vec3 vertexPosition;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragWorldPos;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragWorldPos = worldPos.xyz;
  gl_Position = matProjection * matView * worldPos;
}
`
	equirectFS = `#version 330
in vec3 fragWorldPos;
out vec4 finalColor;
uniform sampler2D skybox;
uniform vec3 cameraPosition;
void main() {
  vec3 dir = normalize(fragWorldPos - cameraPosition);
  float lon = atan(dir.z, dir.x);
  float lat = asin(clamp(dir.y, -1.0, 1.0));
  float u = lon / 6.28318530718 + 0.5;
  float v = 0.5 - lat / 3.14159265359;
  finalColor = texture(skybox, vec2(u, v));
}
`
)

// drawSkybox draws the skybox as a large cube centered on the camera.
func (s *Scene) drawSkybox() {
	rl.DisableDepthMask()
	rl.DisableBackfaceCulling()
	pos := s.Camera.Position
	scale := rl.MatrixScale(skyboxScale, skyboxScale, skyboxScale)
	trans := rl.MatrixTranslate(pos.X, pos.Y, pos.Z)
	transform := rl.MatrixMultiply(scale, trans)
	if s.skyboxEquirect {
		if s.skyboxCamPosLoc >= 0 {
			camPos := []float32{pos.X, pos.Y, pos.Z}
			rl.SetShaderValueV(s.skyboxMtl.Shader, s.skyboxCamPosLoc, camPos, rl.ShaderUniformVec3, 1)
		}
		if s.skyboxTexLoc >= 0 {
			rl.SetShaderValueTexture(s.skyboxMtl.Shader, s.skyboxTexLoc, s.skyboxTex)
		}
	}
	rl.DrawMesh(s.skyboxMesh, s.skyboxMtl, transform)
	rl.EnableBackfaceCulling()
	rl.EnableDepthMask()
}

// drawDebugGrid draws minor/major lines on the XZ plane, slightly above the
// snow so they don't z-fight with the ground.
func drawDebugGrid() {
	minor := rl.NewColor(128, 128, 128, gridMinorAlpha)
	major := rl.NewColor(160, 160, 160, gridMajorAlpha)

	var start, end rl.Vector3
	const y = 0.01
	for x := -gridExtent; x <= gridExtent; x += gridMinorStep {
		c := major
		if x%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(x), y, float32(-gridExtent)
		end.X, end.Y, end.Z = float32(x), y, float32(gridExtent)
		rl.DrawLine3D(start, end, c)
	}
	for z := -gridExtent; z <= gridExtent; z += gridMinorStep {
		c := major
		if z%gridMajorStep != 0 {
			c = minor
		}
		start.X, start.Y, start.Z = float32(-gridExtent), y, float32(z)
		end.X, end.Y, end.Z = float32(gridExtent), y, float32(z)
		rl.DrawLine3D(start, end, c)
	}
}
