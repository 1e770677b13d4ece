package handlers

import "github.com/gin-gonic/gin"

const swaggerUIHTML = `<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width,initial-scale=1" />
    <title>UserHub API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
    <style>
      body { margin: 0; background: #f8fafc; }
      #swagger-ui { max-width: 1200px; margin: 0 auto; }
    </style>
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: "/docs/openapi.yaml",
        dom_id: "#swagger-ui",
        deepLinking: true,
        presets: [SwaggerUIBundle.presets.apis],
        layout: "BaseLayout"
      });
    </script>
  </body>
</html>`

const openAPIYAML = `openapi: 3.0.3
info:
  title: UserHub API
  description: CRUD service for user records.
  version: "1.0"
paths:
  /users:
    get:
      summary: List all users
      responses:
        "200":
          description: List of users
        "404":
          description: No users exist yet
    post:
      summary: Create a user
      requestBody:
        required: true
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/CreateUser"
      responses:
        "201":
          description: Created, body carries the generated userId
        "400":
          description: Validation messages, one per violated rule
  /users/{id}:
    get:
      summary: Fetch one user by id
      parameters:
        - $ref: "#/components/parameters/UserID"
      responses:
        "200":
          description: User found
        "400":
          description: Id is not an integer
        "404":
          description: No user with that id
  /user/{id}:
    put:
      summary: Update selected fields of a user
      parameters:
        - $ref: "#/components/parameters/UserID"
      requestBody:
        required: true
        content:
          application/json:
            schema:
              $ref: "#/components/schemas/UpdateUser"
      responses:
        "200":
          description: Updated
        "400":
          description: Bad id or validation messages
        "404":
          description: No user with that id
    delete:
      summary: Delete a user permanently
      parameters:
        - $ref: "#/components/parameters/UserID"
      responses:
        "200":
          description: Removed
        "400":
          description: Id is not an integer
        "404":
          description: No user with that id
components:
  parameters:
    UserID:
      name: id
      in: path
      required: true
      schema:
        type: integer
        format: int64
  schemas:
    CreateUser:
      type: object
      required: [title, firstName, lastName, email, role, password, confirmPassword]
      properties:
        title:
          type: string
        firstName:
          type: string
        lastName:
          type: string
        email:
          type: string
          format: email
        role:
          type: string
          enum: [Admin, User]
        password:
          type: string
          minLength: 6
        confirmPassword:
          type: string
    UpdateUser:
      type: object
      description: All fields optional; empty string means "not provided".
      properties:
        title:
          type: string
        firstName:
          type: string
        lastName:
          type: string
        email:
          type: string
          format: email
        role:
          type: string
          enum: [Admin, User]
        password:
          type: string
          minLength: 6
        confirmPassword:
          type: string
`

func SwaggerUI(ctx *gin.Context) {
	ctx.Data(200, "text/html; charset=utf-8", []byte(swaggerUIHTML))
}

func OpenAPISpec(ctx *gin.Context) {
	ctx.Data(200, "application/yaml; charset=utf-8", []byte(openAPIYAML))
}
