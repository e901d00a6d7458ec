/*
Package glyph draws text and textured rectangles with OpenGL using a
per-glyph texture atlas and a single streamed quad buffer.

# Overview

An Atlas rasterizes a range of code points (ASCII by default) from an
OpenType or TrueType font into one single-channel texture per glyph, and
records each glyph's size, bearing and advance. A TextRenderer walks a string
code point by code point, positions one quad per glyph from those metrics
and hands it to a QuadStreamer, which overwrites its one dynamic vertex
buffer and issues a 6-vertex draw. A TextureQuadRenderer uses the same
streaming path to draw arbitrary textures.

The package itself does not call OpenGL. Concrete GPU collaborators live in
backend/opengl: QuadStreamer, Program (Shader) and TextureUploader.

# Quick Start

	uploader := opengl.NewTextureUploader()
	atlas, err := glyph.LoadAtlas("fonts/arial.ttf", uploader)
	if err != nil {
	    return err
	}
	defer atlas.Delete()

	shader, _ := opengl.NewProgram(opengl.FontVertexShader, opengl.FontFragmentShader)
	text := glyph.NewTextRenderer(atlas, opengl.NewQuadStreamer(), glyph.WithViewport(1920, 1080))

	for !window.ShouldClose() {
	    text.DrawText(shader, "Hello", 25, 25, 1, glyph.RGB(0.5, 0.8, 0.2))
	    text.DrawTextWrapped(shader, "(C) LearnOpenGL.com", 125, 125, 0.5, glyph.ColorWhite, glyph.DefaultWrapWidth)
	    window.SwapBuffers()
	}

# Coordinates

Both renderers assume an orthographic projection with the origin at the
bottom-left and one unit per pixel. Text is positioned by its baseline
origin; quads by their bottom-left corner.

# Layout

Glyph placement for a pen at (penX, penY) and scale s:

	xpos = penX + bearing.x*s
	ypos = penY - (size.y - bearing.y)*s
	w, h = size.x*s, size.y*s
	penX += (advance >> 6) * s

Wrapped layout moves the pen to the next line, PixelHeight*s lower, when
penX + bearing.x*s passes x + wrapWidth. The test runs per glyph before it is
placed; words are not kept together.

Code points missing from the atlas resolve to NoGlyph, which draws an empty
quad and does not move the pen.

# Logging

Nothing is logged until SetLogger is called with a *slog.Logger.
*/
package glyph
