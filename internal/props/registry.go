package props

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// cached holds mesh and material for one primitive kind. Created lazily on
// first Draw so GPU resources are allocated after the window/OpenGL context
// exists.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
	// centerOffsetY shifts the mesh in model space so a part position means its
	// center. 0 for cube/sphere/torus (already centered); -0.5 for cylinder and
	// cone (raylib generates them with the base at Y=0, top at Y=height).
	centerOffsetY float32
}

// Registry caches the primitive meshes composite props are built from and the
// shared lit material. All props draw through it.
type Registry struct {
	cache    map[string]cached
	viewPos  [3]float32 // camera position, set each frame for specular
	lightDir [3]float32 // direction to light (normalized), set each frame
}

// NewRegistry returns a registry with no meshes; each kind is created on first use.
func NewRegistry() *Registry {
	return &Registry{
		cache:    make(map[string]cached),
		lightDir: [3]float32{0.5, 1, 0.5}, // default: from above-right
	}
}

// SetView sets camera position and direction-to-light for this frame. Call once
// per frame before drawing props so the lit shader gets correct shading.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

// Mesh resolution for rounded primitives.
const (
	sphereRings    = 16
	sphereSlices   = 16
	cylinderSlices = 16
	coneSlices     = 16
)

// ensure creates the mesh and material for the given kind if not yet cached.
// Unknown kinds are ignored (lookups later just skip the part).
func (r *Registry) ensure(kind string) {
	if _, ok := r.cache[kind]; ok {
		return
	}
	var mesh rl.Mesh
	var centerY float32
	switch kind {
	case "cube":
		mesh = rl.GenMeshCube(1, 1, 1)
	case "sphere":
		// Radius 0.5 so diameter = 1, matching the cube side length.
		mesh = rl.GenMeshSphere(0.5, sphereRings, sphereSlices)
	case "cylinder":
		mesh = rl.GenMeshCylinder(0.5, 1, cylinderSlices)
		centerY = -0.5
	case "cone":
		mesh = rl.GenMeshCone(0.5, 1, coneSlices)
		centerY = -0.5
	default:
		return
	}
	mtl := rl.LoadMaterialDefault()
	if shader := loadLitShader(); rl.IsShaderValid(shader) {
		mtl.Shader = shader
	}
	r.cache[kind] = cached{mesh: mesh, mtl: mtl, centerOffsetY: centerY}
}

// drawPart draws one primitive part with the given albedo color and world
// transform. Must be called between BeginMode3D and EndMode3D.
func (r *Registry) drawPart(kind string, color rl.Color, transform rl.Matrix) {
	r.ensure(kind)
	c, ok := r.cache[kind]
	if !ok {
		return
	}
	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = color
	}
	r.setLitShaderUniforms(c.mtl.Shader)
	if c.centerOffsetY != 0 {
		// Center the mesh in model space before the part transform applies.
		offset := rl.MatrixTranslate(0, c.centerOffsetY, 0)
		transform = rl.MatrixMultiply(offset, transform)
	}
	rl.DrawMesh(c.mesh, c.mtl, transform)
}

// loadLitShader returns a shader that does simple directional light + ambient
// with a soft specular term. Same vertex attributes as raylib meshes.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec4 tint = colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = tint.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * tint.rgb;
  vec3 H = normalize(L + V);
  float NdotH = max(dot(N, H), 0.0);
  float spec = pow(NdotH, specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, tint.a);
}
`
)

// Lighting for a snowy daytime scene: cool ambient so shadowed candy isn't
// pure black, warm-white key light, glossy highlights for sugar surfaces.
var defaultAmbient = [4]float32{0.28, 0.3, 0.36, 1.0}

var defaultLightColor = [3]float32{1.0, 0.97, 0.92}

const defaultLightIntensity = float32(0.8)

const defaultSpecularPower = float32(48.0)

const defaultSpecularStrength = float32(0.4)

// setLitShaderUniforms sets viewPos, lightDir, ambient, light color/intensity,
// and specular on the given shader (cgo-safe: local arrays).
func (r *Registry) setLitShaderUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
	amb := [4]float32{defaultAmbient[0], defaultAmbient[1], defaultAmbient[2], defaultAmbient[3]}
	lightColor := [3]float32{defaultLightColor[0], defaultLightColor[1], defaultLightColor[2]}
	if loc := rl.GetShaderLocation(shader, "viewPos"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultLightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularPower"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "specularStrength"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
}
