package main

const vertex = `
#version 460

in  vec2 vertPos;
in  vec3 vertColor;
out vec3 fragColor;

void main() {
    fragColor   = vertColor;
    gl_Position = vec4(vertPos, 0, 1);
}
`

const fragment = `
#version 460

in  vec3 fragColor;
out vec4 outputColor;

void main() {
    outputColor = vec4(fragColor, 1);
}
`
