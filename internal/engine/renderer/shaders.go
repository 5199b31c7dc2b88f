package renderer

// Flat-shaded meshes with a single headlight. uPremultiply matches the
// Transparent rendering mode's ONE, ONE_MINUS_SRC_ALPHA blend.
const meshVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat4 uViewProj;

out vec3 vNormal;
out vec3 vWorldPos;

void main() {
    vec4 world = uModel * vec4(aPos, 1.0);
    vWorldPos = world.xyz;
    vNormal = mat3(transpose(inverse(uModel))) * aNormal;
    gl_Position = uViewProj * world;
}
`

const meshFragmentShader = `
#version 410 core

in vec3 vNormal;
in vec3 vWorldPos;

uniform vec4 uColor;
uniform vec3 uEye;
uniform bool uAlphaTest;
uniform bool uPremultiply;

out vec4 FragColor;

void main() {
    if (uAlphaTest && uColor.a < 0.5) {
        discard;
    }
    vec3 n = normalize(vNormal);
    vec3 l = normalize(uEye - vWorldPos);
    float shade = 0.35 + 0.65 * abs(dot(n, l));
    vec3 rgb = uColor.rgb * shade;
    if (uPremultiply) {
        rgb *= uColor.a;
    }
    FragColor = vec4(rgb, uColor.a);
}
`

const lineVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 uViewProj;

out vec3 vColor;

void main() {
    vColor = aColor;
    gl_Position = uViewProj * vec4(aPos, 1.0);
}
`

const lineFragmentShader = `
#version 410 core

in vec3 vColor;
out vec4 FragColor;

void main() {
    FragColor = vec4(vColor, 1.0);
}
`

// Screen-space textured quads for overlay labels. Positions are pixels
// with a top-left origin.
const overlayVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aUV;

uniform vec2 uScreen;

out vec2 vUV;

void main() {
    vec2 ndc = vec2(aPos.x / uScreen.x * 2.0 - 1.0, 1.0 - aPos.y / uScreen.y * 2.0);
    vUV = aUV;
    gl_Position = vec4(ndc, 0.0, 1.0);
}
`

const overlayFragmentShader = `
#version 410 core

in vec2 vUV;
uniform sampler2D uTexture;
out vec4 FragColor;

void main() {
    FragColor = texture(uTexture, vUV);
}
`
